package message

import (
	"errors"

	"github.com/gofrs/uuid"

	"github.com/quickchat/quickchat/model"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrEmptyMessage = errors.New("text or image is required")
)

// Sidebar サイドバーに表示するユーザー一覧
type Sidebar struct {
	// Users 自分以外の全ユーザー
	Users []*model.User
	// UnseenMessages 送信者ID -> 自分が未読のメッセージ数
	UnseenMessages map[uuid.UUID]int
}

type Manager interface {
	// Send receiverID宛てのメッセージを作成します
	//
	// 成功した場合、メッセージとnilを返します。
	// textとimageが両方とも空の場合、ErrEmptyMessageを返します。
	// 存在しないユーザーを指定した場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	Send(senderID, receiverID uuid.UUID, text, image string) (*model.Message, error)
	// GetConversation meとpartnerの間のメッセージを作成日時の昇順で取得します
	//
	// partnerからmeへの未読メッセージは既読になります。返されるメッセージは既読にする前の状態です。
	// DBによるエラーを返すことがあります。
	GetConversation(me, partner uuid.UUID) ([]*model.Message, error)
	// MarkSeen 指定したメッセージを既読にします
	//
	// 成功した場合、既読になったメッセージとnilを返します。
	// 存在しないメッセージを指定した場合、ErrNotFoundを返します。
	// readerIDがメッセージの受信者でない場合、ErrForbiddenを返します。
	// DBによるエラーを返すことがあります。
	MarkSeen(readerID, messageID uuid.UUID) (*model.Message, error)
	// GetSidebar me以外のユーザー一覧と、それぞれからの未読メッセージ数を取得します
	//
	// DBによるエラーを返すことがあります。
	GetSidebar(me uuid.UUID) (*Sidebar, error)
}
