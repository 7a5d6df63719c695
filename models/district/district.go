package district

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// District is static reference data seeded at first migration. The core
// never mutates these rows.
type District struct {
	ID          string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Image       string      `gorm:"type:varchar(2048)" json:"image"`
	Attractions StringSlice `gorm:"type:json" json:"attractions"`
	Gallery     StringSlice `gorm:"type:json" json:"gallery"`
	Lat         float64     `gorm:"type:decimal(10,6)" json:"lat"`
	Lng         float64     `gorm:"type:decimal(10,6)" json:"lng"`
}

// StringSlice stores a slice of strings as a JSON column.
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ss)
	case string:
		return json.Unmarshal([]byte(v), ss)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
