package listing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"agevee-booking/models/district"
)

// RoomOption is a bookable room tier on a HOTEL listing.
type RoomOption struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Capacity int      `json:"capacity"`
	Features []string `json:"features"`
}

// TourPackage is a bookable package on an AGENCY or GUIDE listing.
type TourPackage struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
}

// Listing is a bookable offering owned by a business account.
type Listing struct {
	ID          string               `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string               `gorm:"type:varchar(255);not null" json:"name"`
	Type        ListingType          `gorm:"type:varchar(20);not null" json:"type"`
	DistrictID  string               `gorm:"type:varchar(64);not null;index" json:"district_id"`
	Description string               `gorm:"type:text" json:"description"`
	PriceLevel  int                  `gorm:"type:int;not null" json:"price_level"`
	Rating      float64              `gorm:"type:decimal(3,1)" json:"rating"`
	Contact     string               `gorm:"type:varchar(255)" json:"contact"`
	Image       string               `gorm:"type:varchar(2048)" json:"image"`
	Features    district.StringSlice `gorm:"type:json" json:"features"`
	Rooms       RoomOptions          `gorm:"type:json" json:"rooms,omitempty"`
	Packages    TourPackages         `gorm:"type:json" json:"packages,omitempty"`
	Status      ListingStatus        `gorm:"type:varchar(20);not null" json:"status"`
	OwnerID     string               `gorm:"type:varchar(64);index" json:"owner_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Room returns the room option with the given id, if any.
func (l *Listing) Room(id string) (RoomOption, bool) {
	for _, r := range l.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return RoomOption{}, false
}

// Package returns the tour package with the given id, if any.
func (l *Listing) Package(id string) (TourPackage, bool) {
	for _, p := range l.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return TourPackage{}, false
}

// RoomOptions stores a slice of room options as a JSON column.
type RoomOptions []RoomOption

func (ro *RoomOptions) Scan(value interface{}) error {
	return scanJSON(value, ro)
}

func (ro RoomOptions) Value() (driver.Value, error) {
	if ro == nil {
		return nil, nil
	}
	return json.Marshal(ro)
}

// TourPackages stores a slice of tour packages as a JSON column.
type TourPackages []TourPackage

func (tp *TourPackages) Scan(value interface{}) error {
	return scanJSON(value, tp)
}

func (tp TourPackages) Value() (driver.Value, error) {
	if tp == nil {
		return nil, nil
	}
	return json.Marshal(tp)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
