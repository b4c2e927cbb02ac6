package consts

const (
	HeaderVersion = "X-QUICKCHAT-VERSION"
	// HeaderToken クライアントがJWTを載せるヘッダー
	HeaderToken = "token"
)
