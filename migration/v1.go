package migration

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"github.com/quickchat/quickchat/utils/optional"
)

// v1 usersにlast_onlineカラムを追加
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			if db.Migrator().HasColumn(&v1User{}, "LastOnline") {
				return nil
			}
			return db.Migrator().AddColumn(&v1User{}, "LastOnline")
		},
		Rollback: func(db *gorm.DB) error {
			return db.Migrator().DropColumn(&v1User{}, "LastOnline")
		},
	}
}

type v1User struct {
	ID         uuid.UUID              `gorm:"type:char(36);not null;primaryKey"`
	LastOnline optional.Of[time.Time] `gorm:"type:datetime(6)"`
}

func (*v1User) TableName() string {
	return "users"
}
