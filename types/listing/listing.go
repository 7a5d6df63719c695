package listing

import (
	listingModel "agevee-booking/models/listing"
)

type CreateRequest struct {
	Name        string                     `json:"name" validate:"required,min=1,max=255"`
	Type        string                     `json:"type" validate:"required,oneof=HOTEL AGENCY GUIDE"`
	DistrictID  string                     `json:"district_id" validate:"required"`
	Description string                     `json:"description" validate:"max=4000"`
	PriceLevel  int                        `json:"price_level" validate:"required,gte=1,lte=5"`
	Contact     string                     `json:"contact" validate:"max=255"`
	Image       string                     `json:"image" validate:"max=2048"`
	Features    []string                   `json:"features"`
	Rooms       []listingModel.RoomOption  `json:"rooms,omitempty"`
	Packages    []listingModel.TourPackage `json:"packages,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}
