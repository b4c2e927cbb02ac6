package event

const (
	// UserOffline ユーザーがオフラインになった
	// 	Fields:
	// 		user_id: uuid.UUID
	// 		datetime: time.Time
	UserOffline = "user.offline"

	// MessageCreated メッセージが作成された
	// 	Fields:
	// 		message_id: uuid.UUID
	// 		message: *model.Message
	MessageCreated = "message.created"
	// MessageSeen メッセージが既読になった
	// 	Fields:
	// 		reader_id: uuid.UUID
	// 		sender_id: uuid.UUID
	// 		message_ids: []uuid.UUID
	MessageSeen = "message.seen"
)
