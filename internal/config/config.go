// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Admin         AdminConfig         `mapstructure:"admin"`
	Log           LogConfig           `mapstructure:"log"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Chatbot       ChatbotConfig       `mapstructure:"chatbot"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 存储所有数据库连接的配置。
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig 存储 MySQL 数据库的配置。未启用时预订、反馈和评论保存在内存中。
type MySQLConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

// RedisConfig 存储 Redis 的配置。未启用时聊天记录保存在进程内存中。
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig 存储 JWT 相关的配置。
type JWTConfig struct {
	Secret                 string `mapstructure:"secret"`
	AccessTokenExpireHours int    `mapstructure:"access_token_expire_hours"`
	RefreshTokenExpireDays int    `mapstructure:"refresh_token_expire_days"`
}

// AdminConfig 存储库存看板管理员账号。PasswordHash 是 bcrypt 哈希。
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// KafkaConfig 存储 Kafka 相关的配置。
type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// ElasticsearchConfig 存储 Elasticsearch 相关的配置。
type ElasticsearchConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addresses string `mapstructure:"addresses"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	IndexName string `mapstructure:"index_name"`
}

// MinIOConfig 存储 MinIO 对象存储的配置。
type MinIOConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
}

// ChatbotConfig 配置 FAQ 聊天机器人。Responses 为空时使用内置应答表。
type ChatbotConfig struct {
	WelcomeText   string        `mapstructure:"welcome_text"`
	ClearedText   string        `mapstructure:"cleared_text"`
	ReplyDelay    time.Duration `mapstructure:"reply_delay"`
	ReplyJitter   time.Duration `mapstructure:"reply_jitter"`
	StoreTimeout  time.Duration `mapstructure:"store_timeout"`
	TranscriptTTL time.Duration `mapstructure:"transcript_ttl"`
	// SessionIdleTimeout 之后内存中的会话被逐出，不超过 TranscriptTTL。
	SessionIdleTimeout time.Duration    `mapstructure:"session_idle_timeout"`
	SweepInterval      time.Duration    `mapstructure:"sweep_interval"`
	DefaultReply       string           `mapstructure:"default_reply"`
	Responses          []ChatbotKeyword `mapstructure:"responses"`
}

// ChatbotKeyword 是应答表中的一项，按配置文件中的顺序匹配。
type ChatbotKeyword struct {
	Keyword string `mapstructure:"keyword"`
	Reply   string `mapstructure:"reply"`
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
// 环境变量 LODGE_<SECTION>_<KEY> 可以覆盖文件中的值，例如 LODGE_SERVER_PORT。
func Init(configPath string) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("LODGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取配置文件失败: %w", err))
	}

	if err := v.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}

// Default 返回只包含默认值的配置，测试和无配置文件启动时使用。
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Errorf("无法解析默认配置: %w", err))
	}
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("database.redis.addr", "localhost:6379")

	v.SetDefault("jwt.access_token_expire_hours", 2)
	v.SetDefault("jwt.refresh_token_expire_days", 7)
	v.SetDefault("admin.username", "admin")

	v.SetDefault("kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.topic", "lodge-inquiries")
	v.SetDefault("kafka.group_id", "amassah-lodge-consumer")

	v.SetDefault("elasticsearch.addresses", "http://localhost:9200")
	v.SetDefault("elasticsearch.index_name", "lodge_rooms")

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.bucket_name", "lodge-reports")

	v.SetDefault("chatbot.welcome_text", "Hello! Welcome to AMASSAH LODGE. I'm here to help you with any questions about our rooms, amenities, or services. How can I assist you today?")
	v.SetDefault("chatbot.cleared_text", "Chat cleared! How can I help you today?")
	v.SetDefault("chatbot.reply_delay", time.Second)
	v.SetDefault("chatbot.reply_jitter", time.Second)
	v.SetDefault("chatbot.store_timeout", 2*time.Second)
	v.SetDefault("chatbot.transcript_ttl", 30*24*time.Hour)
	v.SetDefault("chatbot.session_idle_timeout", 30*time.Minute)
	v.SetDefault("chatbot.sweep_interval", time.Minute)
}
