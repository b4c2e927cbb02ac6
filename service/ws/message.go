package ws

const (
	// OnlineUsersEvent オンラインユーザー一覧
	// 	Body: []uuid.UUID
	OnlineUsersEvent = "online-users"
	// NewMessageEvent 自分宛てのメッセージが作成された
	// 	Body: *model.Message
	NewMessageEvent = "new-message"
	// MessageSeenEvent 自分が送信したメッセージが既読になった
	// 	Body: {"readerId": uuid.UUID, "messageIds": []uuid.UUID}
	MessageSeenEvent = "message-seen"
	// ErrorEvent コマンドエラー
	// 	Body: string
	ErrorEvent = "ERROR"
)

type rawMessage struct {
	t    int
	data []byte
}

type message struct {
	Type string      `json:"type"`
	Body interface{} `json:"body"`
}

func makeMessage(t string, b interface{}) (m *message) {
	return &message{
		Type: t,
		Body: b,
	}
}

func (m *message) toJSON() (b []byte) {
	b, _ = json.Marshal(m)
	return
}
