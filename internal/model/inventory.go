package model

// 库存看板中的房间状态。
const (
	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "cleaning"
)

// InventoryRoom 是附带运营数据的客房，数据为模拟生成。
type InventoryRoom struct {
	Room
	Bookings      int    `json:"bookings"`
	Revenue       int    `json:"revenue"`
	LastBooked    Date   `json:"lastBooked"`
	Status        string `json:"status"`
	OccupancyRate int    `json:"occupancyRate"`
}

// InventoryStats 汇总整个库存（不受过滤条件影响）。
type InventoryStats struct {
	TotalRooms       int `json:"totalRooms"`
	AvailableRooms   int `json:"availableRooms"`
	BookedRooms      int `json:"bookedRooms"`
	TotalRevenue     int `json:"totalRevenue"`
	AverageOccupancy int `json:"averageOccupancy"`
}

// InventoryReport 是库存看板的完整数据。
type InventoryReport struct {
	Rooms []InventoryRoom `json:"rooms"`
	Stats InventoryStats  `json:"stats"`
}
