package booking

import (
	"time"
)

// Booking is a reservation request linking a tourist to a listing.
// ListingName and OwnerID are denormalized snapshots taken when the
// booking is created; they are never re-resolved if the listing later
// changes hands or disappears.
type Booking struct {
	ID          string        `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID      string        `gorm:"type:varchar(64);not null;index" json:"user_id"`
	ListingID   string        `gorm:"type:varchar(64);not null" json:"listing_id"`
	ListingName string        `gorm:"type:varchar(255)" json:"listing_name"`
	OwnerID     string        `gorm:"type:varchar(64);index" json:"owner_id,omitempty"`
	Date        string        `gorm:"type:varchar(64)" json:"date"`
	Details     string        `gorm:"type:text" json:"details"`
	Status      BookingStatus `gorm:"type:varchar(20);not null" json:"status"`
	TotalPrice  float64       `gorm:"type:decimal(12,2)" json:"total_price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
