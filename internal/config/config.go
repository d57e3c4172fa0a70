package config

import (
	"fmt"
	"os"
	"time"

	"LottoBoard/internal/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig          `mapstructure:"server"`    // 服务器配置
	Database  DatabaseConfig        `mapstructure:"database"`  // PostgreSQL配置（调用记录）
	Log       LogConfig             `mapstructure:"log"`       // 日志配置
	Display   DisplayConfig         `mapstructure:"display"`   // 显示配置
	Quota     QuotaConfig           `mapstructure:"quota"`     // API配额（只统计）
	Retention RetentionConfig       `mapstructure:"retention"` // 调用记录清理
	Games     map[string]GameConfig `mapstructure:"games"`     // 每个游戏独立的接口配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int      `mapstructure:"port"`         // 服务端口
	Mode        string   `mapstructure:"mode"`         // Gin运行模式：debug/release/test
	Pprof       bool     `mapstructure:"pprof"`        // 是否注册 /debug/pprof
	CorsOrigins []string `mapstructure:"cors_origins"` // 允许跨域的来源，空则允许全部
}

// DatabaseConfig 数据库配置；DSN 为空时调用记录只保存在内存
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`               // 连接DSN
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`        // debug/info/warn/error
	Format     string `mapstructure:"format"`       // text/json
	File       string `mapstructure:"file"`         // 日志文件路径，空则只输出到控制台
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // 单个文件最大尺寸
	MaxBackups int    `mapstructure:"max_backups"`  // 保留旧文件个数
	MaxAgeDays int    `mapstructure:"max_age_days"` // 旧文件保留天数
}

// DisplayConfig 显示配置
type DisplayConfig struct {
	DefaultCurrency string `mapstructure:"default_currency"` // 启动时选中的币种
}

// QuotaConfig 外部接口调用额度（500次/30天），只用于报告
type QuotaConfig struct {
	Limit      int `mapstructure:"limit"`
	WindowDays int `mapstructure:"window_days"`
}

// RetentionConfig 调用记录定时清理
type RetentionConfig struct {
	Cron     string `mapstructure:"cron"`      // Cron表达式
	KeepDays int    `mapstructure:"keep_days"` // 保留天数
}

// GameConfig 单个游戏的接口配置
type GameConfig struct {
	BaseURL string `mapstructure:"base_url"` // API基础地址
	Path    string `mapstructure:"path"`     // 接口路径
	APIKey  string `mapstructure:"api_key"`  // 静态 apikey
	Timeout int    `mapstructure:"timeout"`  // 请求超时（秒），0 表示不设置
	Proxy   string `mapstructure:"proxy"`    // 代理地址
}

// URL 完整请求地址
func (g GameConfig) URL() string {
	return g.BaseURL + g.Path
}

const defaultBaseURL = "https://api.collectapi.com"

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	dir := os.Getenv("LOTTOBOARD_CONFIG_DIR")
	if dir == "" {
		dir = "./config"
	}
	return LoadFrom(dir)
}

// LoadFrom 从指定目录读取 config.yaml；文件不存在时使用默认值
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.pprof", false)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("display.default_currency", "EUR")
	v.SetDefault("quota.limit", 500)
	v.SetDefault("quota.window_days", 30)
	v.SetDefault("retention.cron", "0 3 * * *")
	v.SetDefault("retention.keep_days", 30)
	v.SetDefault("games.powerball.base_url", defaultBaseURL)
	v.SetDefault("games.powerball.path", "/chancegame/usaPowerball")
	v.SetDefault("games.megamillions.base_url", defaultBaseURL)
	v.SetDefault("games.megamillions.path", "/chancegame/usaMegaMillions")
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if cfg.Games == nil {
		cfg.Games = make(map[string]GameConfig)
	}
	if v := os.Getenv("COLLECTAPI_KEY"); v != "" {
		for _, g := range model.Games {
			gc := cfg.Games[string(g)]
			gc.APIKey = v
			cfg.Games[string(g)] = gc
		}
	}
	if v := os.Getenv("COLLECTAPI_PROXY"); v != "" {
		for name, gc := range cfg.Games {
			gc.Proxy = v
			cfg.Games[name] = gc
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
}

// Game 取某个游戏的接口配置
func (c *Config) Game(game model.Game) (GameConfig, bool) {
	gc, ok := c.Games[string(game)]
	return gc, ok
}
