package validator

import (
	"database/sql/driver"
	"errors"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
)

// NotNilUUID UUIDがNilでないことを検証するルール
var NotNilUUID = vd.By(func(value interface{}) error {
	var id uuid.UUID
	switch v := value.(type) {
	case nil:
		return nil
	case uuid.UUID:
		id = v
	case string:
		parsed, err := uuid.FromString(v)
		if err != nil {
			return errors.New("must be UUID")
		}
		id = parsed
	default:
		return errors.New("must be UUID")
	}
	if id == uuid.Nil {
		return errors.New("must not be nil UUID")
	}
	return nil
})

// OneOfRequired 少なくとも1つの値が空でないことを検証します
func OneOfRequired(fieldNames string, values ...interface{}) error {
	for _, v := range values {
		if !vd.IsEmpty(v) {
			return nil
		}
	}
	return vd.NewError("validation_one_of_required", "one of "+fieldNames+" is required")
}

// RequiredIfValid optional.Ofなどの値が有効な場合に、空でないことを検証するルール
var RequiredIfValid = vd.By(func(value interface{}) error {
	v, ok := value.(driver.Valuer)
	if !ok {
		return nil
	}
	raw, err := v.Value()
	if err != nil || raw == nil {
		return nil
	}
	if vd.IsEmpty(raw) {
		return vd.ErrRequired
	}
	return nil
})
