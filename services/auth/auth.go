package auth

import (
	"errors"
	"fmt"
	"strings"

	activityModel "agevee-booking/models/activity"
	userModel "agevee-booking/models/user"
	"agevee-booking/services/activity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
)

// adminPassword is the literal password the ADMIN account must present
// on top of the stored credential check.
const adminPassword = "admin"

// Service owns account identity: registration, login, profile updates
// and admin-side user management.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// FindByEmail matches emails case-insensitively.
func (s *Service) FindByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	err := s.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Register creates an approved account and returns it. Fails with
// ErrDuplicateEmail when the email is already taken, regardless of case.
func (s *Service) Register(name, email, password string, userType userModel.UserType) (*userModel.User, error) {
	if _, err := s.FindByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := userModel.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Type:         userType,
		IsApproved:   true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("New %s account created: %s", userType, email)
		return activity.Record(tx, "User Registered", details, activityModel.TypeInfo)
	})
	if err != nil {
		return nil, err
	}

	return &newUser, nil
}

// Login authenticates an account. The ADMIN account additionally
// requires the literal admin password; blocked accounts are refused
// after the credential check.
func (s *Service) Login(email, password string) (*userModel.User, error) {
	u, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if u.Type == userModel.TypeAdmin && password != adminPassword {
		return nil, ErrInvalidCredentials
	}

	if u.IsBlocked {
		return nil, ErrAccountSuspended
	}

	return u, nil
}

// UpdateProfile overwrites the stored record for the given user id.
// A non-empty newPassword replaces the stored hash.
func (s *Service) UpdateProfile(id, name, email, newPassword string) (*userModel.User, error) {
	var u userModel.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// A changed email must stay unique across accounts.
	if !strings.EqualFold(email, u.Email) {
		if _, err := s.FindByEmail(email); err == nil {
			return nil, ErrDuplicateEmail
		} else if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	u.Name = name
	u.Email = email
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&u).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("User %s updated their profile details.", u.Email)
		return activity.Record(tx, "Profile Updated", details, activityModel.TypeInfo)
	})
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUser returns the account with the given id.
func (s *Service) GetUser(id string) (*userModel.User, error) {
	var u userModel.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListUsers returns every account, oldest first.
func (s *Service) ListUsers() ([]userModel.User, error) {
	var users []userModel.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SetBlocked toggles account suspension and records the decision.
func (s *Service) SetBlocked(id string, blocked bool) (*userModel.User, error) {
	var u userModel.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	u.IsBlocked = blocked
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&u).Error; err != nil {
			return err
		}
		if blocked {
			details := fmt.Sprintf("User %s was suspended.", u.Email)
			return activity.Record(tx, "User Blocked", details, activityModel.TypeWarning)
		}
		details := fmt.Sprintf("User %s was reinstated.", u.Email)
		return activity.Record(tx, "User Unblocked", details, activityModel.TypeInfo)
	})
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// DeleteUser removes an account. Bookings referencing the user keep
// their stored fields untouched; the deliberate no-cascade policy leaves
// them orphaned for record keeping. A missing id is a silent no-op.
func (s *Service) DeleteUser(id string) error {
	var u userModel.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&u).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("Admin deleted user: %s", u.Email)
		return activity.Record(tx, "User Deleted", details, activityModel.TypeDanger)
	})
}
