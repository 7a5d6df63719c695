package listing

// ListingType classifies what kind of offering a listing is.
type ListingType string

const (
	TypeHotel  ListingType = "HOTEL"
	TypeAgency ListingType = "AGENCY"
	TypeGuide  ListingType = "GUIDE"
)

func (lt ListingType) String() string {
	return string(lt)
}

func (lt ListingType) IsValid() bool {
	switch lt {
	case TypeHotel, TypeAgency, TypeGuide:
		return true
	default:
		return false
	}
}

// ListingStatus is the moderation state of a listing. There is no
// persisted REJECTED state: rejecting a listing removes it.
type ListingStatus string

const (
	StatusPending  ListingStatus = "PENDING"
	StatusApproved ListingStatus = "APPROVED"

	// StatusRejected is accepted as a moderation decision but never
	// stored; it resolves to deletion of the listing row.
	StatusRejected ListingStatus = "REJECTED"
)

func (ls ListingStatus) String() string {
	return string(ls)
}

// IsStorable reports whether the status can appear on a persisted listing.
func (ls ListingStatus) IsStorable() bool {
	return ls == StatusPending || ls == StatusApproved
}

// IsDecision reports whether the status is a valid moderation decision.
func (ls ListingStatus) IsDecision() bool {
	return ls == StatusApproved || ls == StatusRejected
}
