package listing

import (
	"testing"

	activityModel "agevee-booking/models/activity"
	"agevee-booking/models/district"
	listingModel "agevee-booking/models/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupListingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&listingModel.Listing{}, &activityModel.Log{})
	require.NoError(t, err)

	return db
}

func seedListing(t *testing.T, svc *Service, name string, lt listingModel.ListingType, districtID string, price int) *listingModel.Listing {
	l := &listingModel.Listing{
		Name:       name,
		Type:       lt,
		DistrictID: districtID,
		PriceLevel: price,
		Features:   district.StringSlice{"Wifi"},
		OwnerID:    "owner-1",
	}
	require.NoError(t, svc.Create(l))
	return l
}

func TestCreate(t *testing.T) {
	db := setupListingTestDB(t)
	svc := NewService(db)

	l := seedListing(t, svc, "Shangrila Resort", listingModel.TypeHotel, "d1", 5)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, listingModel.StatusPending, l.Status)

	var entry activityModel.Log
	require.NoError(t, db.Where("action = ?", "Listing Submitted").First(&entry).Error)
	assert.Contains(t, entry.Details, "Shangrila Resort")
}

func TestList(t *testing.T) {
	db := setupListingTestDB(t)
	svc := NewService(db)

	seedListing(t, svc, "Shangrila Resort", listingModel.TypeHotel, "d1", 5)
	seedListing(t, svc, "K2 Trekkers", listingModel.TypeAgency, "d1", 4)
	seedListing(t, svc, "Ali Karim", listingModel.TypeGuide, "d2", 2)

	t.Run("no filter returns everything", func(t *testing.T) {
		listings, err := svc.List(Filter{})
		require.NoError(t, err)
		assert.Len(t, listings, 3)
	})

	t.Run("by district", func(t *testing.T) {
		listings, err := svc.List(Filter{DistrictID: "d1"})
		require.NoError(t, err)
		assert.Len(t, listings, 2)
	})

	t.Run("by type", func(t *testing.T) {
		listings, err := svc.List(Filter{Type: listingModel.TypeGuide})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Ali Karim", listings[0].Name)
	})

	t.Run("by max price", func(t *testing.T) {
		listings, err := svc.List(Filter{MaxPrice: 4})
		require.NoError(t, err)
		assert.Len(t, listings, 2)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		listings, err := svc.List(Filter{DistrictID: "d1", Type: listingModel.TypeHotel, MaxPrice: 5})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Shangrila Resort", listings[0].Name)

		listings, err = svc.List(Filter{DistrictID: "d2", Type: listingModel.TypeHotel})
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}

func TestOwnerListings(t *testing.T) {
	db := setupListingTestDB(t)
	svc := NewService(db)

	seedListing(t, svc, "Shangrila Resort", listingModel.TypeHotel, "d1", 5)
	other := &listingModel.Listing{Name: "Serena Gilgit", Type: listingModel.TypeHotel, DistrictID: "d3", PriceLevel: 5, OwnerID: "owner-2"}
	require.NoError(t, svc.Create(other))

	listings, err := svc.OwnerListings("owner-1")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Shangrila Resort", listings[0].Name)
}

func TestUpdateStatus(t *testing.T) {
	db := setupListingTestDB(t)
	svc := NewService(db)

	t.Run("approval flips status in place", func(t *testing.T) {
		l := seedListing(t, svc, "Shangrila Resort", listingModel.TypeHotel, "d1", 5)

		require.NoError(t, svc.UpdateStatus(l.ID, listingModel.StatusApproved))

		got, err := svc.Get(l.ID)
		require.NoError(t, err)
		assert.Equal(t, listingModel.StatusApproved, got.Status)

		var entry activityModel.Log
		require.NoError(t, db.Where("action = ?", "Listing Approved").First(&entry).Error)
		assert.Equal(t, activityModel.TypeInfo, entry.Type)
		assert.Contains(t, entry.Details, "is now live")
	})

	t.Run("rejection removes the row", func(t *testing.T) {
		l := seedListing(t, svc, "Sketchy Stays", listingModel.TypeHotel, "d1", 1)

		require.NoError(t, svc.UpdateStatus(l.ID, listingModel.StatusRejected))

		_, err := svc.Get(l.ID)
		assert.ErrorIs(t, err, ErrListingNotFound)

		var entry activityModel.Log
		require.NoError(t, db.Where("action = ?", "Listing Rejected").First(&entry).Error)
		assert.Equal(t, activityModel.TypeWarning, entry.Type)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.UpdateStatus("missing", listingModel.StatusApproved)
		assert.ErrorIs(t, err, ErrListingNotFound)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		err := svc.UpdateStatus("whatever", listingModel.StatusPending)
		assert.ErrorIs(t, err, ErrInvalidDecision)
	})
}

func TestDelete(t *testing.T) {
	db := setupListingTestDB(t)
	svc := NewService(db)

	l := seedListing(t, svc, "Shangrila Resort", listingModel.TypeHotel, "d1", 5)

	require.NoError(t, svc.Delete(l.ID))

	_, err := svc.Get(l.ID)
	assert.ErrorIs(t, err, ErrListingNotFound)

	var entry activityModel.Log
	require.NoError(t, db.Where("action = ?", "Listing Deleted").First(&entry).Error)
	assert.Equal(t, activityModel.TypeDanger, entry.Type)

	// Missing ids are a silent no-op.
	assert.NoError(t, svc.Delete("missing"))
}
