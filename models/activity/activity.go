package activity

import (
	"time"
)

// LogType grades the severity of an audit entry.
type LogType string

const (
	TypeInfo    LogType = "INFO"
	TypeWarning LogType = "WARNING"
	TypeDanger  LogType = "DANGER"
)

func (lt LogType) IsValid() bool {
	return lt == TypeInfo || lt == TypeWarning || lt == TypeDanger
}

// Log is an append-only audit record. Entries are never mutated or
// deleted; reads return newest-first.
type Log struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Action    string    `gorm:"type:varchar(255);not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	Type      LogType   `gorm:"type:varchar(20);not null" json:"type"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

// TableName sets the table name for the Log model
func (Log) TableName() string {
	return "activity_logs"
}
