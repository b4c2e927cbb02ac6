package model

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickchat/quickchat/utils/optional"
)

// ErrUserWrongPassword パスワードが一致しない
var ErrUserWrongPassword = errors.New("password or email is wrong")

// User ユーザー構造体
type User struct {
	ID         uuid.UUID              `gorm:"type:char(36);not null;primaryKey" json:"_id"`
	Email      string                 `gorm:"type:varchar(254);not null;unique" json:"email"`
	FullName   string                 `gorm:"type:varchar(64);not null" json:"fullName"`
	Password   string                 `gorm:"type:char(60);not null" json:"-"`
	ProfilePic string                 `gorm:"type:text;not null" json:"profilePic"`
	Bio        string                 `gorm:"type:text;not null" json:"bio"`
	LastOnline optional.Of[time.Time] `gorm:"type:datetime(6)" json:"lastOnline"`
	CreatedAt  time.Time              `gorm:"precision:6" json:"createdAt"`
	UpdatedAt  time.Time              `gorm:"precision:6" json:"updatedAt"`
}

// TableName User構造体のテーブル名
func (*User) TableName() string {
	return "users"
}

// SetPassword パスワードをハッシュ化して設定します
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// Authenticate パスワードを検証します
func (u *User) Authenticate(password string) error {
	if len(u.Password) == 0 {
		return ErrUserWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return ErrUserWrongPassword
	}
	return nil
}
