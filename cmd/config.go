package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/quickchat/quickchat/router"
	"github.com/quickchat/quickchat/service/ws"
	"github.com/quickchat/quickchat/utils/gormzap"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`

	// Origin サーバーオリジン (default: http://localhost:5001)
	Origin string `mapstructure:"origin" yaml:"origin"`
	// Port サーバーポート番号 (default: 5001)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// ShutdownTimeout シャットダウン待機時間(秒) (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// MariaDB データベース接続設定
	MariaDB struct {
		// Host ホスト名 (default: 127.0.0.1)
		Host string `mapstructure:"host" yaml:"host"`
		// Port ポート番号 (default: 3306)
		Port int `mapstructure:"port" yaml:"port"`
		// Username ユーザー名 (default: root)
		Username string `mapstructure:"username" yaml:"username"`
		// Password パスワード (default: password)
		Password string `mapstructure:"password" yaml:"password"`
		// Database データベース名 (default: quickchat)
		Database string `mapstructure:"database" yaml:"database"`
		// Connection コネクション設定
		Connection struct {
			// MaxOpen 最大オープン接続数. 0は無制限 (default: 0)
			MaxOpen int `mapstructure:"maxOpen" yaml:"maxOpen"`
			// MaxIdle 最大アイドル接続数 (default: 2)
			MaxIdle int `mapstructure:"maxIdle" yaml:"maxIdle"`
			// LifeTime 待機接続維持時間. 0は無制限 (default: 0)
			LifeTime int `mapstructure:"lifetime" yaml:"lifetime"`
		} `mapstructure:"connection" yaml:"connection"`
	} `mapstructure:"mariadb" yaml:"mariadb"`

	// JWT JsonWebToken設定
	JWT struct {
		// Keys 鍵設定
		Keys struct {
			// Private 秘密鍵ファイルパス (PEM形式のECDSA P-256鍵)
			Private string `mapstructure:"private" yaml:"private"`
		} `mapstructure:"keys" yaml:"keys"`
		// Expiration トークン有効期間(秒) (default: 604800)
		Expiration int `mapstructure:"expiration" yaml:"expiration"`
	} `mapstructure:"jwt" yaml:"jwt"`

	// WS WebSocket設定
	WS struct {
		// MessageBufferSize セッション毎の送信バッファサイズ (default: 256)
		MessageBufferSize int `mapstructure:"messageBufferSize" yaml:"messageBufferSize"`
		// PongWait pongの待機時間(秒) (default: 60)
		PongWait int `mapstructure:"pongWait" yaml:"pongWait"`
	} `mapstructure:"ws" yaml:"ws"`

	// CORS CORS設定
	CORS struct {
		// AllowOrigins 許可するオリジン (default: [http://localhost:5173])
		AllowOrigins []string `mapstructure:"allowOrigins" yaml:"allowOrigins"`
	} `mapstructure:"cors" yaml:"cors"`
}

func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("origin", "http://localhost:5001")
	viper.SetDefault("port", 5001)
	viper.SetDefault("gzip", true)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("mariadb.host", "127.0.0.1")
	viper.SetDefault("mariadb.port", 3306)
	viper.SetDefault("mariadb.username", "root")
	viper.SetDefault("mariadb.password", "password")
	viper.SetDefault("mariadb.database", "quickchat")
	viper.SetDefault("mariadb.connection.maxOpen", 0)
	viper.SetDefault("mariadb.connection.maxIdle", 2)
	viper.SetDefault("mariadb.connection.lifetime", 0)
	viper.SetDefault("jwt.keys.private", "")
	viper.SetDefault("jwt.expiration", 60*60*24*7)
	viper.SetDefault("ws.messageBufferSize", 256)
	viper.SetDefault("ws.pongWait", 60)
	viper.SetDefault("cors.allowOrigins", []string{"http://localhost:5173"})
}

func (c Config) getDatabase(logger *zap.Logger) (*gorm.DB, error) {
	engine, err := gorm.Open(mysql.New(mysql.Config{
		DSN: fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=Local",
			c.MariaDB.Username,
			c.MariaDB.Password,
			c.MariaDB.Host,
			c.MariaDB.Port,
			c.MariaDB.Database,
		),
		DefaultStringSize: 255,
	}), &gorm.Config{
		Logger: gormzap.New(logger.Named("gorm")),
	})
	if err != nil {
		return nil, err
	}
	db, err := engine.DB()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(c.MariaDB.Connection.MaxOpen)
	db.SetMaxIdleConns(c.MariaDB.Connection.MaxIdle)
	db.SetConnMaxLifetime(time.Duration(c.MariaDB.Connection.LifeTime) * time.Second)
	return engine.Set("gorm:table_options", "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"), nil
}

func (c Config) accessTokenExp() time.Duration {
	return time.Duration(c.JWT.Expiration) * time.Second
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:    c.DevMode,
		Version:        Version,
		Revision:       Revision,
		AccessLogging:  c.AccessLog.Enabled,
		Gzipped:        c.Gzip,
		AllowOrigins:   c.CORS.AllowOrigins,
		AccessTokenExp: c.accessTokenExp(),
	}
}

func provideWSConfig(c *Config) ws.Config {
	return ws.Config{
		MessageBufferSize: c.WS.MessageBufferSize,
		PongWait:          time.Duration(c.WS.PongWait) * time.Second,
	}
}
