package model

import "time"

// Review 对应 reviews 表，保存住客评论。
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Rating    int       `gorm:"type:tinyint;not null;index" json:"rating"`
	Date      Date      `gorm:"type:varchar(10);not null" json:"date"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	Avatar    string    `gorm:"type:varchar(255)" json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Review) TableName() string {
	return "reviews"
}

// RatingBucket 是评分分布中的一档。
type RatingBucket struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ReviewSummary 汇总所有评论。
type ReviewSummary struct {
	Total         int            `json:"total"`
	AverageRating float64        `json:"averageRating"`
	Distribution  []RatingBucket `json:"distribution"`
}
