package model

// Room 描述目录中的一种客房。
type Room struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"` // Luxury / Standard / Family
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Occupancy   int      `json:"occupancy"`
	Size        string   `json:"size"`
	Available   bool     `json:"available"`
}

// RoomComparison 是客房对比的结果，Matrix[i][j] 表示 Rooms[i] 是否具备 Features[j]。
type RoomComparison struct {
	Rooms    []Room   `json:"rooms"`
	Features []string `json:"features"`
	Matrix   [][]bool `json:"matrix"`
}

// RoomDocument 是写入 Elasticsearch 的客房文档。
type RoomDocument struct {
	RoomID   int      `json:"room_id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Features []string `json:"features"`
	Price    int      `json:"price"`
}
