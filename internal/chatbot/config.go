package chatbot

import (
	"strings"

	"amassah-lodge-go/internal/config"
)

// TableFromConfig 按配置顺序构建应答表；配置中没有应答项时使用内置应答表。
func TableFromConfig(cfg config.ChatbotConfig) *ResponseTable {
	builtin := DefaultResponseTable()
	if len(cfg.Responses) == 0 {
		if cfg.DefaultReply == "" {
			return builtin
		}
		return NewResponseTable(builtin.Entries(), cfg.DefaultReply)
	}

	entries := make([]Entry, 0, len(cfg.Responses))
	for _, r := range cfg.Responses {
		keyword := strings.ToLower(strings.TrimSpace(r.Keyword))
		if keyword == "" || keyword == "default" {
			continue
		}
		entries = append(entries, Entry{Keyword: keyword, Reply: r.Reply})
	}
	fallback := cfg.DefaultReply
	if fallback == "" {
		fallback = builtin.Default()
	}
	return NewResponseTable(entries, fallback)
}

// OptionsFromConfig 把配置转换为会话选项。空闲逐出时间不超过快照的过期时间，
// 否则内存中的会话会比存储中的快照活得更久。
func OptionsFromConfig(cfg config.ChatbotConfig) Options {
	idle := cfg.SessionIdleTimeout
	if cfg.TranscriptTTL > 0 && (idle <= 0 || idle > cfg.TranscriptTTL) {
		idle = cfg.TranscriptTTL
	}
	return Options{
		WelcomeText:  cfg.WelcomeText,
		ClearedText:  cfg.ClearedText,
		ReplyDelay:   cfg.ReplyDelay,
		ReplyJitter:  cfg.ReplyJitter,
		StoreTimeout: cfg.StoreTimeout,
		IdleTimeout:  idle,
	}
}
