package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Message ユーザー間のダイレクトメッセージ
//
// Text, Imageの少なくとも一方は空でない
type Message struct {
	ID         uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"_id"`
	SenderID   uuid.UUID `gorm:"type:char(36);not null;index:idx_messages_sender_id_receiver_id_created_at,priority:1" json:"senderId"`
	ReceiverID uuid.UUID `gorm:"type:char(36);not null;index:idx_messages_sender_id_receiver_id_created_at,priority:2;index:idx_messages_receiver_id_seen,priority:1" json:"receiverId"`
	Text       string    `gorm:"type:text;not null" json:"text,omitempty"`
	Image      string    `gorm:"type:text;not null" json:"image,omitempty"`
	Seen       bool      `gorm:"type:boolean;not null;default:false;index:idx_messages_receiver_id_seen,priority:2" json:"seen"`
	CreatedAt  time.Time `gorm:"precision:6;index:idx_messages_sender_id_receiver_id_created_at,priority:3" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"precision:6" json:"updatedAt"`
}

// TableName Message構造体のテーブル名
func (*Message) TableName() string {
	return "messages"
}

// IsParticipant userIDがこのメッセージの送信者または受信者かどうか
func (m *Message) IsParticipant(userID uuid.UUID) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
