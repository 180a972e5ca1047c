// Package catalog 保存站点的静态内容：客房、特别优惠、博客文章和初始评论。
// 所有函数都返回副本，调用方可以随意修改。
package catalog

import "amassah-lodge-go/internal/model"

var rooms = []model.Room{
	{
		ID:          1,
		Name:        "Luxury Suite",
		Type:        "Luxury",
		Price:       299,
		Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&h=600&fit=crop",
		Description: "Experience ultimate luxury in our premium suite featuring panoramic city views, marble bathroom, and exclusive amenities.",
		Features:    []string{"King Size Bed", "City View", "Marble Bathroom", "Mini Bar", "Room Service", "Balcony"},
		Occupancy:   2,
		Size:        "65 sqm",
		Available:   true,
	},
	{
		ID:          2,
		Name:        "Deluxe Room",
		Type:        "Standard",
		Price:       199,
		Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800&h=600&fit=crop",
		Description: "Comfortable and elegant room with modern amenities and stylish decor perfect for business or leisure travelers.",
		Features:    []string{"Queen Size Bed", "Garden View", "Work Desk", "WiFi", "Coffee Machine", "Air Conditioning"},
		Occupancy:   2,
		Size:        "35 sqm",
		Available:   true,
	},
	{
		ID:          3,
		Name:        "Family Suite",
		Type:        "Family",
		Price:       249,
		Image:       "https://images.unsplash.com/photo-1560472355-536de3962603?w=800&h=600&fit=crop",
		Description: "Spacious family accommodation with separate living area and connecting rooms, perfect for families with children.",
		Features:    []string{"2 Queen Beds", "Living Area", "Kitchenette", "Kids Area", "Safety Features", "Pool Access"},
		Occupancy:   4,
		Size:        "50 sqm",
		Available:   true,
	},
	{
		ID:          4,
		Name:        "Executive Room",
		Type:        "Luxury",
		Price:       259,
		Image:       "https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?w=800&h=600&fit=crop",
		Description: "Professional accommodation with dedicated workspace and premium business amenities for the modern executive.",
		Features:    []string{"King Size Bed", "Work Station", "Meeting Area", "Premium WiFi", "Business Center Access", "Concierge"},
		Occupancy:   2,
		Size:        "40 sqm",
		Available:   false,
	},
	{
		ID:          5,
		Name:        "Standard Room",
		Type:        "Standard",
		Price:       149,
		Image:       "https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800&h=600&fit=crop",
		Description: "Comfortable and affordable accommodation with all essential amenities for a pleasant stay.",
		Features:    []string{"Double Bed", "City View", "Private Bathroom", "WiFi", "TV", "Daily Housekeeping"},
		Occupancy:   2,
		Size:        "25 sqm",
		Available:   true,
	},
	{
		ID:          6,
		Name:        "Penthouse Suite",
		Type:        "Luxury",
		Price:       499,
		Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&h=600&fit=crop",
		Description: "Ultimate luxury penthouse with panoramic views, private terrace, and exclusive butler service.",
		Features:    []string{"Master Bedroom", "Private Terrace", "Butler Service", "Jacuzzi", "Premium Bar", "360° View"},
		Occupancy:   2,
		Size:        "100 sqm",
		Available:   true,
	},
}

var reviews = []model.Review{
	{
		ID:      1,
		Name:    "Sarah Johnson",
		Rating:  5,
		Date:    "2024-01-15",
		Comment: "Absolutely amazing stay! The staff was incredibly welcoming and the room was spotless. The view from our balcony was breathtaking.",
		Avatar:  "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
	},
	{
		ID:      2,
		Name:    "Michael Chen",
		Rating:  4,
		Date:    "2024-01-10",
		Comment: "Great location and excellent service. The breakfast was delicious and the amenities exceeded our expectations.",
		Avatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
	},
	{
		ID:      3,
		Name:    "Emma Wilson",
		Rating:  5,
		Date:    "2024-01-05",
		Comment: "Perfect for our family vacation! The kids loved the pool and the family suite was spacious and comfortable.",
		Avatar:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
	},
	{
		ID:      4,
		Name:    "David Rodriguez",
		Rating:  4,
		Date:    "2023-12-28",
		Comment: "Business trip made comfortable. The executive room had everything I needed for work, and the WiFi was excellent.",
		Avatar:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
	},
	{
		ID:      5,
		Name:    "Lisa Thompson",
		Rating:  5,
		Date:    "2023-12-20",
		Comment: "Romantic getaway perfection! The luxury suite was divine and the service was impeccable throughout our stay.",
		Avatar:  "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=face",
	},
}

var offers = []model.SpecialOffer{
	{
		ID:          1,
		Title:       "Early Bird Special",
		Description: "Book 30 days in advance and save 20% on your stay",
		Discount:    "20% OFF",
		ValidUntil:  "2024-03-31",
		Image:       "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop",
		Badge:       "Limited Time",
	},
	{
		ID:          2,
		Title:       "Weekend Getaway",
		Description: "Special weekend rates for Friday-Sunday stays",
		Discount:    "15% OFF",
		ValidUntil:  "2024-04-30",
		Image:       "https://images.unsplash.com/photo-1540541338287-41700207dee6?w=400&h=300&fit=crop",
		Badge:       "Weekends Only",
	},
	{
		ID:          3,
		Title:       "Family Package",
		Description: "Family suite + breakfast + kids activities included",
		Discount:    "25% OFF",
		ValidUntil:  "2024-05-15",
		Image:       "https://images.unsplash.com/photo-1551632811-561732d1e306?w=400&h=300&fit=crop",
		Badge:       "Family Special",
	},
}

var blogPosts = []model.BlogPost{
	{
		ID:      1,
		Title:   "10 Must-Try Local Restaurants Near AMASSAH LODGE",
		Summary: "Discover the best dining experiences within walking distance of our hotel...",
		Date:    "2024-01-18",
		Image:   "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400&h=250&fit=crop",
		Content: "Our concierge team has curated a list of exceptional local restaurants that showcase the best of regional cuisine. From fine dining establishments to cozy bistros, these culinary gems offer unforgettable experiences just steps away from AMASSAH LODGE...",
	},
	{
		ID:      2,
		Title:   "Exploring the City: A Guest's Guide to Local Attractions",
		Summary: "Your complete guide to the best attractions and activities in the area...",
		Date:    "2024-01-12",
		Image:   "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=400&h=250&fit=crop",
		Content: "Whether you're here for business or pleasure, our city offers countless opportunities for exploration and adventure. This comprehensive guide highlights must-see attractions, cultural sites, and hidden gems that will make your stay memorable...",
	},
	{
		ID:      3,
		Title:   "Wellness and Relaxation: Our New Spa Services",
		Summary: "Introducing our enhanced spa and wellness facilities...",
		Date:    "2024-01-08",
		Image:   "https://images.unsplash.com/photo-1540555700478-4be289fbecef?w=400&h=250&fit=crop",
		Content: "We're excited to announce the expansion of our wellness facilities with new spa services designed to rejuvenate both body and mind. Our expert therapists offer a range of treatments using premium organic products...",
	},
}

// Rooms 返回全部客房，按 ID 排列。
func Rooms() []model.Room {
	out := make([]model.Room, len(rooms))
	for i, r := range rooms {
		r.Features = append([]string(nil), r.Features...)
		out[i] = r
	}
	return out
}

// Reviews 返回初始评论。
func Reviews() []model.Review {
	return append([]model.Review(nil), reviews...)
}

// Offers 返回特别优惠。
func Offers() []model.SpecialOffer {
	return append([]model.SpecialOffer(nil), offers...)
}

// BlogPosts 返回博客文章。
func BlogPosts() []model.BlogPost {
	return append([]model.BlogPost(nil), blogPosts...)
}
