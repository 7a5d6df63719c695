package booking

type CreateRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Details   string `json:"details" validate:"max=4000"`

	// Hotel stays: room tier plus calendar dates.
	RoomID   string `json:"room_id" validate:"omitempty"`
	CheckIn  string `json:"check_in" validate:"omitempty"`
	CheckOut string `json:"check_out" validate:"omitempty"`

	// Agency/guide packages: package plus party size.
	PackageID string `json:"package_id" validate:"omitempty"`
	Guests    int    `json:"guests" validate:"omitempty,gte=1,lte=50"`

	// Fallback total when no room or package is referenced; the server
	// recomputes the total whenever it can.
	TotalPrice float64 `json:"total_price" validate:"omitempty,gte=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED REJECTED CANCELLED"`
}
