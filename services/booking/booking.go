package booking

import (
	"errors"
	"fmt"
	"strings"

	activityModel "agevee-booking/models/activity"
	bookingModel "agevee-booking/models/booking"
	listingModel "agevee-booking/models/listing"
	"agevee-booking/services/activity"
	"agevee-booking/services/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking is already in a terminal state")
	ErrUnknownRoom       = errors.New("room not found on listing")
	ErrUnknownPackage    = errors.New("package not found on listing")
	ErrForbidden         = errors.New("not a party to this booking")
)

// CreateInput carries everything needed to open a reservation request.
// RoomID/CheckIn/CheckOut price a nightly stay; PackageID/Guests price a
// per-person package; TotalPrice is the caller-supplied fallback when
// neither is referenced.
type CreateInput struct {
	UserID    string
	ListingID string
	Date      string
	Details   string

	RoomID   string
	CheckIn  string
	CheckOut string

	PackageID string
	Guests    int

	TotalPrice float64
}

// Service owns the booking lifecycle and the per-user and per-business
// reservation queues.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create opens a PENDING booking. The owning business is resolved from
// the listing once, at creation time, and denormalized onto the booking;
// a missing or ownerless listing is tolerated — the booking persists
// without an owner and never surfaces in any business queue.
func (s *Service) Create(in CreateInput) (*bookingModel.Booking, error) {
	b := bookingModel.Booking{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		ListingID:  in.ListingID,
		Date:       in.Date,
		Details:    in.Details,
		Status:     bookingModel.StatusPending,
		TotalPrice: in.TotalPrice,
	}

	var l listingModel.Listing
	err := s.db.First(&l, "id = ?", in.ListingID).Error
	switch {
	case err == nil:
		b.ListingName = l.Name
		if l.OwnerID != "" {
			b.OwnerID = l.OwnerID
		}
		total, err := s.price(&l, in)
		if err != nil {
			return nil, err
		}
		if total > 0 {
			b.TotalPrice = total
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Keep the request on record even when the listing is gone.
	default:
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("Booking received for %s", b.ListingName)
		return activity.Record(tx, "New Booking", details, activityModel.TypeInfo)
	})
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// price resolves the referenced room or package and computes the total.
// Returns 0 with no error when the input references neither.
func (s *Service) price(l *listingModel.Listing, in CreateInput) (float64, error) {
	if in.RoomID != "" {
		room, ok := l.Room(in.RoomID)
		if !ok {
			return 0, ErrUnknownRoom
		}
		return pricing.NightlyTotal(room.Price, in.CheckIn, in.CheckOut)
	}
	if in.PackageID != "" {
		pkg, ok := l.Package(in.PackageID)
		if !ok {
			return 0, ErrUnknownPackage
		}
		return pricing.PerPersonTotal(pkg.Price, in.Guests), nil
	}
	return 0, nil
}

// UserBookings returns the requester's bookings, newest first.
func (s *Service) UserBookings(userID string) ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// BusinessBookings returns the incoming queue for a business owner,
// newest first. Ownerless bookings never appear here.
func (s *Service) BusinessBookings(ownerID string) ([]bookingModel.Booking, error) {
	if ownerID == "" {
		return nil, nil
	}
	var bookings []bookingModel.Booking
	err := s.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Get returns a single booking by id.
func (s *Service) Get(id string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatus moves a pending booking to CONFIRMED, REJECTED or
// CANCELLED. Only the requester may cancel; only the owning business may
// confirm or reject. Terminal bookings refuse further transitions.
func (s *Service) UpdateStatus(id, actorID string, status bookingModel.BookingStatus) (*bookingModel.Booking, error) {
	if !status.IsValid() || status == bookingModel.StatusPending {
		return nil, ErrInvalidStatus
	}

	var b bookingModel.Booking
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	allowed := actorID != "" && actorID == b.OwnerID
	if status == bookingModel.StatusCancelled {
		allowed = actorID != "" && actorID == b.UserID
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if !b.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&b).Update("status", status).Error; err != nil {
			return err
		}

		action := "Booking Rejected"
		logType := activityModel.TypeWarning
		switch status {
		case bookingModel.StatusConfirmed:
			action = "Booking Confirmed"
			logType = activityModel.TypeInfo
		case bookingModel.StatusCancelled:
			action = "Booking Cancelled"
			logType = activityModel.TypeInfo
		}
		details := fmt.Sprintf("Reservation for %s was %s.", b.ListingName, strings.ToLower(status.String()))
		return activity.Record(tx, action, details, logType)
	})
	if err != nil {
		return nil, err
	}

	b.Status = status
	return &b, nil
}
