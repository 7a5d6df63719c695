package booking

import (
	"testing"

	activityModel "agevee-booking/models/activity"
	bookingModel "agevee-booking/models/booking"
	listingModel "agevee-booking/models/listing"
	userModel "agevee-booking/models/user"
	authService "agevee-booking/services/auth"
	listingService "agevee-booking/services/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Walks a tourist through the whole flow: a hotel owner registers and
// submits a listing, an admin approves it, a tourist finds it through
// the filtered search and books two nights, and the owner confirms.
func TestTouristJourney(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.User{},
		&listingModel.Listing{},
		&bookingModel.Booking{},
		&activityModel.Log{},
	))

	accounts := authService.NewService(db)
	listings := listingService.NewService(db)
	bookings := NewService(db)

	owner, err := accounts.Register("Hotel Owner", "owner@example.com", "pw123456", userModel.TypeHotel)
	require.NoError(t, err)
	alice, err := accounts.Register("Alice", "alice@example.com", "secret123", userModel.TypeTourist)
	require.NoError(t, err)

	hotel := &listingModel.Listing{
		Name:       "Skardu Heights",
		Type:       listingModel.TypeHotel,
		DistrictID: "d1",
		PriceLevel: 3,
		OwnerID:    owner.ID,
		Rooms: listingModel.RoomOptions{
			{ID: "std", Name: "Standard Room", Price: 120, Capacity: 2},
		},
	}
	require.NoError(t, listings.Create(hotel))

	// A pending listing is visible in search but not yet approved.
	require.NoError(t, listings.UpdateStatus(hotel.ID, listingModel.StatusApproved))

	found, err := listings.List(listingService.Filter{DistrictID: "d1", Type: listingModel.TypeHotel, MaxPrice: 3})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, listingModel.StatusApproved, found[0].Status)

	b, err := bookings.Create(CreateInput{
		UserID:    alice.ID,
		ListingID: found[0].ID,
		Date:      "2026-09-10",
		Details:   "Standard Room, 2 nights",
		RoomID:    "std",
		CheckIn:   "2026-09-10",
		CheckOut:  "2026-09-12",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(240), b.TotalPrice)
	assert.Equal(t, owner.ID, b.OwnerID)

	queue, err := bookings.BusinessBookings(owner.ID)
	require.NoError(t, err)
	require.Len(t, queue, 1)

	confirmed, err := bookings.UpdateStatus(b.ID, owner.ID, bookingModel.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusConfirmed, confirmed.Status)

	mine, err := bookings.UserBookings(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, bookingModel.StatusConfirmed, mine[0].Status)

	// Every step along the way left an audit entry.
	var count int64
	require.NoError(t, db.Model(&activityModel.Log{}).Count(&count).Error)
	assert.GreaterOrEqual(t, count, int64(5))
}
