package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config watcher 配置
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

// ServerConfig 快照推送服务配置
type ServerConfig struct {
	URL              string `yaml:"url" env:"HOLDEM_WATCH_SERVER_URL"`
	Token            string `yaml:"token" env:"HOLDEM_WATCH_TOKEN"`
	SessionID        string `yaml:"session_id" env:"HOLDEM_WATCH_SESSION"` // 为空时订阅全部会话
	HandshakeTimeout int    `yaml:"handshake_timeout"`                     // 握手超时（秒）
}

// RedisConfig Redis 配置，未启用时上下文只保存在内存中
type RedisConfig struct {
	Enabled    bool   `yaml:"enabled" env:"HOLDEM_WATCH_REDIS_ENABLED"`
	Addr       string `yaml:"addr" env:"HOLDEM_WATCH_REDIS_ADDR"`
	Password   string `yaml:"password" env:"HOLDEM_WATCH_REDIS_PASSWORD"`
	DB         int    `yaml:"db"`
	ContextTTL int    `yaml:"context_ttl"` // 会话上下文过期时间（分钟）
}

// LogConfig 日志配置
type LogConfig struct {
	Dir     string `yaml:"dir" env:"HOLDEM_WATCH_LOG_DIR"` // 为空时使用 ~/.holdem-watch
	Verbose bool   `yaml:"verbose" env:"HOLDEM_WATCH_VERBOSE"`
}

// DisplayConfig 终端输出配置
type DisplayConfig struct {
	NoColor    bool `yaml:"no_color" env:"NO_COLOR"`
	ShowEvents bool `yaml:"show_events"` // 是否打印 EVENT 输出
}

// HandshakeTimeoutDuration 返回握手超时时长
func (c *ServerConfig) HandshakeTimeoutDuration() time.Duration {
	return time.Duration(c.HandshakeTimeout) * time.Second
}

// ContextTTLDuration 返回上下文过期时长
func (c *RedisConfig) ContextTTLDuration() time.Duration {
	return time.Duration(c.ContextTTL) * time.Minute
}

// Load 加载配置文件，再用环境变量覆盖
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("读取环境变量失败: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default 返回默认配置（同样应用环境变量覆盖）
func Default() *Config {
	cfg := &Config{Display: DisplayConfig{ShowEvents: true}}
	_ = cleanenv.ReadEnv(cfg)
	cfg.applyDefaults()
	return cfg
}

// 设置默认值
func (c *Config) applyDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = "ws://localhost:1780/ws"
	}
	if c.Server.HandshakeTimeout == 0 {
		c.Server.HandshakeTimeout = 10
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.ContextTTL == 0 {
		c.Redis.ContextTTL = 360
	}
}
