package dto

type RoomCounts struct {
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Cleaning    int `json:"cleaning"`
	Maintenance int `json:"maintenance"`
}

type StatsResponse struct {
	Rooms          RoomCounts `json:"rooms"`
	ActiveBookings int        `json:"active_bookings"`
	TodayOrders    int        `json:"today_orders"`
	KitchenQueue   int        `json:"kitchen_queue"`
	TodayEarnings  float64    `json:"today_earnings"`
}
