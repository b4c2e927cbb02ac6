package validator

import (
	"testing"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/quickchat/quickchat/utils/optional"
)

func TestNotNilUUID(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.FromString("550e8400-e29b-41d4-a716-446655440000"))

	t.Run("ok (nil)", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, NotNilUUID.Validate(nil))
	})
	t.Run("ok (uuid.UUID)", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, NotNilUUID.Validate(id))
	})
	t.Run("ok (string)", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, NotNilUUID.Validate(id.String()))
	})
	t.Run("ng (int)", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, NotNilUUID.Validate(1))
	})
	t.Run("ng (nil uuid.UUID)", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, NotNilUUID.Validate(uuid.Nil))
	})
	t.Run("ng (broken string)", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, NotNilUUID.Validate("not-a-uuid"))
	})
}

func TestOneOfRequired(t *testing.T) {
	t.Parallel()

	assert.NoError(t, OneOfRequired("text, image", "hello", ""))
	assert.NoError(t, OneOfRequired("text, image", "", "https://example.com/a.png"))
	assert.Error(t, OneOfRequired("text, image", "", ""))
}

func TestRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		rules []vd.Rule
		ok    bool
	}{
		{"email ok", "alice@example.com", EmailRuleRequired, true},
		{"email empty", "", EmailRuleRequired, false},
		{"email broken", "alice", EmailRuleRequired, false},
		{"password ok", "password123", PasswordRuleRequired, true},
		{"password short", "abc", PasswordRuleRequired, false},
		{"password non ascii", "パスワードです", PasswordRuleRequired, false},
		{"full name ok", "Alice", FullNameRuleRequired, true},
		{"full name empty", "", FullNameRuleRequired, false},
		{"bio empty", "", BioRule, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			err := vd.Validate(c.value, c.rules...)
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRequiredIfValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, vd.Validate(optional.Of[string]{}, RequiredIfValid))
	assert.NoError(t, vd.Validate(optional.From("a"), RequiredIfValid))
	assert.EqualError(t, vd.Validate(optional.From(""), RequiredIfValid), vd.ErrRequired.Error())
	assert.NoError(t, vd.Validate("not valuer", RequiredIfValid))
}
