package activity

import (
	"testing"
	"time"

	activityModel "agevee-booking/models/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupActivityTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&activityModel.Log{}))
	return db
}

func TestRecord(t *testing.T) {
	db := setupActivityTestDB(t)

	require.NoError(t, Record(db, "User Registered", "New TOURIST account created: alice@example.com", activityModel.TypeInfo))

	var entry activityModel.Log
	require.NoError(t, db.First(&entry).Error)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "User Registered", entry.Action)
	assert.Equal(t, activityModel.TypeInfo, entry.Type)
	assert.WithinDuration(t, time.Now(), entry.Timestamp, time.Minute)
}

func TestRecordRollsBackWithTransaction(t *testing.T) {
	db := setupActivityTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := Record(tx, "User Deleted", "Admin deleted user: bob@example.com", activityModel.TypeDanger); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&activityModel.Log{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecent(t *testing.T) {
	db := setupActivityTestDB(t)

	stamps := []time.Time{
		time.Now().Add(-3 * time.Hour),
		time.Now().Add(-2 * time.Hour),
		time.Now().Add(-1 * time.Hour),
	}
	actions := []string{"First", "Second", "Third"}
	for i, ts := range stamps {
		entry := activityModel.Log{ID: actions[i], Action: actions[i], Type: activityModel.TypeInfo, Timestamp: ts}
		require.NoError(t, db.Create(&entry).Error)
	}

	t.Run("newest first", func(t *testing.T) {
		logs, err := Recent(db, 0)
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, "Third", logs[0].Action)
		assert.Equal(t, "First", logs[2].Action)
	})

	t.Run("limit caps the feed", func(t *testing.T) {
		logs, err := Recent(db, 2)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "Third", logs[0].Action)
	})
}
