// Package model 包含了应用的数据模型定义。
package model

import "time"

// ChatMessage 是聊天记录中的一条消息，按 JSON 数组整体存储。
// Timestamp 序列化为 RFC 3339 (ISO-8601) 文本。
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}
