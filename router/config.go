package router

import (
	"time"
)

// Config APIサーバー設定
type Config struct {
	// Development 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
	// AllowOrigins CORSで許可するオリジン
	AllowOrigins []string
	// AccessTokenExp 発行するトークンの有効期間
	AccessTokenExp time.Duration
}
