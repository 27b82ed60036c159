package domain

import "time"

// WorkoutEntry is one logged workout session. Rows are never physically
// removed; Deleted hides them from every listing instead.
type WorkoutEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_workout_user;not null" json:"user_id"`
	Date      string    `gorm:"type:varchar(32);not null" json:"date"`
	Workout   string    `gorm:"type:varchar(191);not null" json:"workout"`
	Duration  int       `gorm:"not null" json:"duration"`
	Deleted   bool      `gorm:"column:deleted_flag;not null;default:false" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkoutEntry) TableName() string { return "workout_tracker" }

func (w *WorkoutEntry) SetOwner(userID uint) { w.UserID = userID }
func (w *WorkoutEntry) Owner() uint          { return w.UserID }
