package activity

import (
	"time"

	activityModel "agevee-booking/models/activity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record appends an audit entry inside the caller's transaction so the
// entry commits or rolls back together with the mutation it describes.
func Record(tx *gorm.DB, action, details string, logType activityModel.LogType) error {
	entry := activityModel.Log{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   details,
		Type:      logType,
		Timestamp: time.Now(),
	}
	return tx.Create(&entry).Error
}

// Recent returns audit entries newest-first. A limit of 0 returns the
// full feed.
func Recent(db *gorm.DB, limit int) ([]activityModel.Log, error) {
	var logs []activityModel.Log
	query := db.Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
