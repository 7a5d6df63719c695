package seeders

import (
	"log"

	"agevee-booking/models/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser guarantees the platform owner account exists.
func SeedAdminUser(db *gorm.DB) {
	log.Printf("🔍 Checking admin account...")

	var count int64
	if err := db.Model(&user.User{}).Where("type = ?", user.TypeAdmin).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check for admin account: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Admin account already present. No seeding needed.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := user.User{
		ID:           "admin",
		Name:         "Website Owner",
		Email:        "admin@agevee.com",
		PasswordHash: string(hash),
		Type:         user.TypeAdmin,
		IsApproved:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin account: %v", err)
		return
	}

	log.Printf("✅ Seeded admin account %s.", admin.Email)
}
