package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/quickchat/quickchat/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // usersにlast_onlineカラムを追加
		v2(), // 未読数集計用に(receiver_id, seen)の複合インデックスを追加
	}
}

// AllTables 最新のスキーマの全テーブルモデル
//
// 最新のスキーマの全テーブルのモデル構造体を記述すること
func AllTables() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Message{},
	}
}
