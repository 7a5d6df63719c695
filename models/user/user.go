package user

import (
	"time"
)

// UserType identifies the role of an account on the platform.
type UserType string

const (
	TypeTourist UserType = "TOURIST"
	TypeAgency  UserType = "AGENCY"
	TypeHotel   UserType = "HOTEL"
	TypeGuide   UserType = "GUIDE"
	TypeAdmin   UserType = "ADMIN"
)

func (ut UserType) String() string {
	return string(ut)
}

func (ut UserType) IsValid() bool {
	switch ut {
	case TypeTourist, TypeAgency, TypeHotel, TypeGuide, TypeAdmin:
		return true
	default:
		return false
	}
}

// IsBusiness returns true for account types that can own listings.
func (ut UserType) IsBusiness() bool {
	return ut == TypeAgency || ut == TypeHotel || ut == TypeGuide
}

// User is an account on the platform. Emails are stored as given but
// matched case-insensitively.
type User struct {
	ID           string   `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string   `gorm:"type:varchar(255);not null" json:"name"`
	Email        string   `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	Type         UserType `gorm:"type:varchar(20);not null" json:"type"`
	IsApproved   bool     `gorm:"type:bool;default:true" json:"is_approved"`
	IsBlocked    bool     `gorm:"type:bool;default:false" json:"is_blocked"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
