//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"github.com/gofrs/uuid"

	"github.com/quickchat/quickchat/model"
)

// CreateMessageArgs メッセージ作成引数
type CreateMessageArgs struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Text       string
	Image      string
}

// MessageRepository メッセージリポジトリ
type MessageRepository interface {
	// CreateMessage メッセージを作成します
	//
	// 成功した場合、メッセージとnilを返します。
	// 作成がコミットされた後、event.MessageCreatedを発行します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// Text, Imageが共に空の場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateMessage(args CreateMessageArgs) (*model.Message, error)
	// GetMessageByID 指定したIDのメッセージを取得します
	//
	// 成功した場合、メッセージとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetMessageByID(id uuid.UUID) (*model.Message, error)
	// GetConversation 2ユーザー間のメッセージを作成日時の昇順で取得します
	//
	// 成功した場合、メッセージの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetConversation(userA, userB uuid.UUID) ([]*model.Message, error)
	// MarkMessageAsSeen 指定したメッセージを既読にします
	//
	// 成功した場合、nilを返します。既に既読の場合もnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	MarkMessageAsSeen(id uuid.UUID) error
	// MarkConversationAsSeen senderからreceiverへの未読メッセージを全て既読にします
	//
	// 成功した場合、既読にしたメッセージのIDの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	MarkConversationAsSeen(senderID, receiverID uuid.UUID) ([]uuid.UUID, error)
	// GetUnseenMessageCounts receiverの未読メッセージ数を送信者ごとに取得します
	//
	// 未読メッセージが無い送信者は含まれません。
	// DBによるエラーを返すことがあります。
	GetUnseenMessageCounts(receiverID uuid.UUID) (map[uuid.UUID]int, error)
}
