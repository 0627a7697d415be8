package config

import "time"

// Console definition console_service YAML structure
type Console struct {
	Port       string        `mapstructure:"port"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	CodeTTL    time.Duration `mapstructure:"code_ttl"`

	DocStore DocStoreConfig `mapstructure:"docstore"`
	Redis    RedisConfig    `mapstructure:"redis"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
}

// DocStoreConfig definition flat file document store setting
type DocStoreConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig definition redis setting
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	RedisDB  int    `mapstructure:"redis_db"`
}

// SMTPConfig definition access code mail setting
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}
