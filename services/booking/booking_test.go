package booking

import (
	"testing"
	"time"

	activityModel "agevee-booking/models/activity"
	bookingModel "agevee-booking/models/booking"
	listingModel "agevee-booking/models/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBookingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&listingModel.Listing{}, &bookingModel.Booking{}, &activityModel.Log{})
	require.NoError(t, err)

	return db
}

func seedHotel(t *testing.T, db *gorm.DB) *listingModel.Listing {
	l := listingModel.Listing{
		ID:         "h1",
		Name:       "Shangrila Resort",
		Type:       listingModel.TypeHotel,
		DistrictID: "d1",
		PriceLevel: 5,
		Status:     listingModel.StatusApproved,
		OwnerID:    "owner-1",
		Rooms: listingModel.RoomOptions{
			{ID: "r3", Name: "Standard Room", Price: 120, Capacity: 2},
		},
	}
	require.NoError(t, db.Create(&l).Error)
	return &l
}

func seedAgency(t *testing.T, db *gorm.DB) *listingModel.Listing {
	l := listingModel.Listing{
		ID:         "a1",
		Name:       "K2 Trekkers",
		Type:       listingModel.TypeAgency,
		DistrictID: "d1",
		PriceLevel: 4,
		Status:     listingModel.StatusApproved,
		OwnerID:    "owner-2",
		Packages: listingModel.TourPackages{
			{ID: "p2", Name: "Deosai Jeep Safari", Price: 400, Duration: "3 Days"},
		},
	}
	require.NoError(t, db.Create(&l).Error)
	return &l
}

func TestCreateRoomBooking(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := NewService(db)
	seedHotel(t, db)

	b, err := svc.Create(CreateInput{
		UserID:    "alice",
		ListingID: "h1",
		Date:      "2026-09-10",
		Details:   "Standard Room, 2 nights",
		RoomID:    "r3",
		CheckIn:   "2026-09-10",
		CheckOut:  "2026-09-12",
	})
	require.NoError(t, err)

	assert.Equal(t, bookingModel.StatusPending, b.Status)
	assert.Equal(t, "Shangrila Resort", b.ListingName)
	assert.Equal(t, "owner-1", b.OwnerID)
	assert.Equal(t, float64(240), b.TotalPrice)

	var entry activityModel.Log
	require.NoError(t, db.Where("action = ?", "New Booking").First(&entry).Error)
	assert.Equal(t, "Booking received for Shangrila Resort", entry.Details)
}

func TestCreatePackageBooking(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := NewService(db)
	seedAgency(t, db)

	b, err := svc.Create(CreateInput{
		UserID:    "alice",
		ListingID: "a1",
		Date:      "2026-09-10",
		PackageID: "p2",
		Guests:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1200), b.TotalPrice)

	t.Run("guest count below one charges a single traveler", func(t *testing.T) {
		b, err := svc.Create(CreateInput{
			UserID:    "alice",
			ListingID: "a1",
			Date:      "2026-09-10",
			PackageID: "p2",
		})
		require.NoError(t, err)
		assert.Equal(t, float64(400), b.TotalPrice)
	})
}

func TestCreateBookingEdgeCases(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := NewService(db)
	seedHotel(t, db)

	t.Run("unknown room", func(t *testing.T) {
		_, err := svc.Create(CreateInput{UserID: "alice", ListingID: "h1", RoomID: "nope", CheckIn: "2026-09-10", CheckOut: "2026-09-12"})
		assert.ErrorIs(t, err, ErrUnknownRoom)
	})

	t.Run("reversed stay dates", func(t *testing.T) {
		_, err := svc.Create(CreateInput{UserID: "alice", ListingID: "h1", RoomID: "r3", CheckIn: "2026-09-12", CheckOut: "2026-09-10"})
		assert.Error(t, err)
	})

	t.Run("fallback price when neither room nor package is referenced", func(t *testing.T) {
		b, err := svc.Create(CreateInput{UserID: "alice", ListingID: "h1", Date: "2026-09-10", TotalPrice: 99})
		require.NoError(t, err)
		assert.Equal(t, float64(99), b.TotalPrice)
	})

	t.Run("missing listing is tolerated", func(t *testing.T) {
		b, err := svc.Create(CreateInput{UserID: "alice", ListingID: "gone", Date: "2026-09-10", TotalPrice: 50})
		require.NoError(t, err)
		assert.Empty(t, b.OwnerID)
		assert.Empty(t, b.ListingName)
		assert.Equal(t, float64(50), b.TotalPrice)
	})
}

func TestBookingQueues(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := NewService(db)
	seedHotel(t, db)

	first, err := svc.Create(CreateInput{UserID: "alice", ListingID: "h1", RoomID: "r3", CheckIn: "2026-09-10", CheckOut: "2026-09-11"})
	require.NoError(t, err)
	// Distinct created_at so the ordering assertion is meaningful.
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	second, err := svc.Create(CreateInput{UserID: "alice", ListingID: "h1", RoomID: "r3", CheckIn: "2026-10-01", CheckOut: "2026-10-02"})
	require.NoError(t, err)

	t.Run("user queue is newest first", func(t *testing.T) {
		bookings, err := svc.UserBookings("alice")
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, second.ID, bookings[0].ID)
		assert.Equal(t, first.ID, bookings[1].ID)
	})

	t.Run("business queue matches the stamped owner", func(t *testing.T) {
		bookings, err := svc.BusinessBookings("owner-1")
		require.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("empty owner id yields nothing", func(t *testing.T) {
		bookings, err := svc.BusinessBookings("")
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestUpdateStatus(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := NewService(db)
	seedHotel(t, db)

	create := func(t *testing.T) *bookingModel.Booking {
		b, err := svc.Create(CreateInput{UserID: "alice", ListingID: "h1", RoomID: "r3", CheckIn: "2026-09-10", CheckOut: "2026-09-12"})
		require.NoError(t, err)
		return b
	}

	t.Run("owner confirms", func(t *testing.T) {
		b := create(t)
		updated, err := svc.UpdateStatus(b.ID, "owner-1", bookingModel.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, bookingModel.StatusConfirmed, updated.Status)

		var entry activityModel.Log
		require.NoError(t, db.Where("action = ?", "Booking Confirmed").First(&entry).Error)
		assert.Equal(t, activityModel.TypeInfo, entry.Type)
		assert.Equal(t, "Reservation for Shangrila Resort was confirmed.", entry.Details)
	})

	t.Run("reject logs a warning", func(t *testing.T) {
		b := create(t)
		_, err := svc.UpdateStatus(b.ID, "owner-1", bookingModel.StatusRejected)
		require.NoError(t, err)

		var entry activityModel.Log
		require.NoError(t, db.Where("action = ?", "Booking Rejected").First(&entry).Error)
		assert.Equal(t, activityModel.TypeWarning, entry.Type)
	})

	t.Run("requester cancels", func(t *testing.T) {
		b := create(t)
		updated, err := svc.UpdateStatus(b.ID, "alice", bookingModel.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, bookingModel.StatusCancelled, updated.Status)
	})

	t.Run("requester cannot confirm their own booking", func(t *testing.T) {
		b := create(t)
		_, err := svc.UpdateStatus(b.ID, "alice", bookingModel.StatusConfirmed)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner cannot cancel on behalf of the requester", func(t *testing.T) {
		b := create(t)
		_, err := svc.UpdateStatus(b.ID, "owner-1", bookingModel.StatusCancelled)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unrelated account is refused", func(t *testing.T) {
		b := create(t)
		_, err := svc.UpdateStatus(b.ID, "mallory", bookingModel.StatusRejected)
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = svc.UpdateStatus(b.ID, "mallory", bookingModel.StatusCancelled)
		assert.ErrorIs(t, err, ErrForbidden)

		fetched, err := svc.Get(b.ID)
		require.NoError(t, err)
		assert.Equal(t, bookingModel.StatusPending, fetched.Status)
	})

	t.Run("terminal bookings refuse further transitions", func(t *testing.T) {
		b := create(t)
		_, err := svc.UpdateStatus(b.ID, "alice", bookingModel.StatusCancelled)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(b.ID, "owner-1", bookingModel.StatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("pending is not a target state", func(t *testing.T) {
		b := create(t)
		_, err := svc.UpdateStatus(b.ID, "owner-1", bookingModel.StatusPending)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateStatus("missing", "owner-1", bookingModel.StatusConfirmed)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
