package domain

import "time"

// WaterTracker holds a user's daily water target and the amount consumed so
// far. One row per user. Consumed grows by accumulation: each update adds a
// delta to the stored value rather than overwriting it.
type WaterTracker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_water_user;not null" json:"user_id"`
	Target    float64   `gorm:"column:target;not null;default:0" json:"target"`
	Consumed  float64   `gorm:"column:consumed;not null;default:0" json:"consumed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WaterTracker) TableName() string { return "water_tracker" }

func (w *WaterTracker) SetOwner(userID uint) { w.UserID = userID }
func (w *WaterTracker) Owner() uint          { return w.UserID }
