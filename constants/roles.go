package constants

// Account roles as they appear in session token claims.
const (
	RoleTourist = "TOURIST"
	RoleAgency  = "AGENCY"
	RoleHotel   = "HOTEL"
	RoleGuide   = "GUIDE"
	RoleAdmin   = "ADMIN"
)

// Role groups for convenience
var (
	BusinessRoles = []string{
		RoleAgency,
		RoleHotel,
		RoleGuide,
	}
)
