package listing

import (
	"errors"
	"fmt"

	activityModel "agevee-booking/models/activity"
	listingModel "agevee-booking/models/listing"
	"agevee-booking/services/activity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidDecision = errors.New("invalid moderation decision")
)

// Filter narrows the listing collection. Zero values disable each
// predicate; the predicates that remain are conjunctive.
type Filter struct {
	DistrictID string
	Type       listingModel.ListingType
	MaxPrice   int
}

// Service owns the listing lifecycle: creation, moderation, deletion and
// the read-side queries dashboards and search consume.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns listings matching the filter. No default status filtering
// is applied: callers separate PENDING from APPROVED themselves.
func (s *Service) List(f Filter) ([]listingModel.Listing, error) {
	query := s.db.Model(&listingModel.Listing{})
	if f.DistrictID != "" {
		query = query.Where("district_id = ?", f.DistrictID)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.MaxPrice > 0 {
		query = query.Where("price_level <= ?", f.MaxPrice)
	}

	var listings []listingModel.Listing
	if err := query.Order("created_at ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// OwnerListings returns the listings owned by the given business account.
func (s *Service) OwnerListings(ownerID string) ([]listingModel.Listing, error) {
	var listings []listingModel.Listing
	err := s.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// Get returns a single listing by id.
func (s *Service) Get(id string) (*listingModel.Listing, error) {
	var l listingModel.Listing
	if err := s.db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Create persists a new listing awaiting moderation.
func (s *Service) Create(l *listingModel.Listing) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.Status = listingModel.StatusPending

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("Listing %q submitted for review.", l.Name)
		return activity.Record(tx, "Listing Submitted", details, activityModel.TypeInfo)
	})
}

// UpdateStatus applies a moderation decision. Approval flips the status
// in place; rejection removes the listing entirely — there is no
// persisted REJECTED state.
func (s *Service) UpdateStatus(id string, status listingModel.ListingStatus) error {
	if !status.IsDecision() {
		return ErrInvalidDecision
	}

	var l listingModel.Listing
	if err := s.db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}

	if status == listingModel.StatusRejected {
		return s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&l).Error; err != nil {
				return err
			}
			details := fmt.Sprintf("Listing %q was rejected.", l.Name)
			return activity.Record(tx, "Listing Rejected", details, activityModel.TypeWarning)
		})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&l).Update("status", listingModel.StatusApproved).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("Listing %q is now live.", l.Name)
		return activity.Record(tx, "Listing Approved", details, activityModel.TypeInfo)
	})
}

// Delete removes a listing. A missing id is a silent no-op.
func (s *Service) Delete(id string) error {
	var l listingModel.Listing
	if err := s.db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&l).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("Listing %q was deleted.", l.Name)
		return activity.Record(tx, "Listing Deleted", details, activityModel.TypeDanger)
	})
}
