package dto

type StatsResponse struct {
	TotalUsers    int64 `json:"total_users"`
	TotalServices int64 `json:"total_services"`
	TotalBookings int64 `json:"total_bookings"`
	Revenue       int64 `json:"revenue"`
}
