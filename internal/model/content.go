package model

// SpecialOffer 对应首页的特别优惠。
type SpecialOffer struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	ValidUntil  Date   `json:"validUntil"`
	Image       string `json:"image"`
	Badge       string `json:"badge"`
}

// BlogPost 对应博客文章。
type BlogPost struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    Date   `json:"date"`
	Image   string `json:"image"`
	Content string `json:"content"`
}
