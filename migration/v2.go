package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v2 未読数集計用に(receiver_id, seen)の複合インデックスを追加
func v2() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "2",
		Migrate: func(db *gorm.DB) error {
			return db.Exec("CREATE INDEX idx_messages_receiver_id_seen ON messages (receiver_id, seen)").Error
		},
		Rollback: func(db *gorm.DB) error {
			return db.Exec("DROP INDEX idx_messages_receiver_id_seen ON messages").Error
		},
	}
}
