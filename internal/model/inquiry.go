package model

import "time"

// 预订与反馈的处理状态。
const (
	InquiryStatusPending      = "pending"
	InquiryStatusAcknowledged = "acknowledged"
)

// Reservation 对应 reservations 表。它只是一次预订咨询，由前台后续确认。
type Reservation struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Email           string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string    `gorm:"type:varchar(50);not null" json:"phone"`
	CheckIn         Date      `gorm:"type:varchar(10);not null" json:"checkIn"`
	CheckOut        Date      `gorm:"type:varchar(10);not null" json:"checkOut"`
	Guests          string    `gorm:"type:varchar(4);not null" json:"guests"`
	RoomType        string    `gorm:"type:varchar(20);not null" json:"roomType"`
	SpecialRequests string    `gorm:"type:text" json:"specialRequests"`
	Nights          int       `gorm:"not null" json:"nights"`
	EstimatedTotal  int       `gorm:"not null" json:"estimatedTotal"`
	Status          string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Reservation) TableName() string {
	return "reservations"
}

// Feedback 对应 feedback 表。
type Feedback struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	Category  string    `gorm:"type:varchar(20);not null" json:"category"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Feedback) TableName() string {
	return "feedback"
}

// Quote 是根据入住日期和房型估算的价格。
type Quote struct {
	Nights         int `json:"nights"`
	EstimatedTotal int `json:"estimatedTotal"`
}
