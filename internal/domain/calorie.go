package domain

import "time"

// CalorieEntry is one logged food item with its nutrition snapshot.
type CalorieEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_cal_user;not null" json:"user_id"`
	Food      string    `gorm:"type:varchar(191);not null" json:"food"`
	Calories  float64   `gorm:"not null" json:"calories"`
	Price     float64   `json:"price"`
	Fat       float64   `json:"fat"`
	Carbs     float64   `json:"carbs"`
	Protein   float64   `json:"protein"`
	Deleted   bool      `gorm:"column:deleted_flag;not null;default:false" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CalorieEntry) TableName() string { return "cal_tracker" }

func (c *CalorieEntry) SetOwner(userID uint) { c.UserID = userID }
func (c *CalorieEntry) Owner() uint          { return c.UserID }

// CalorieTotal is the running aggregate over a user's calorie entries.
// At most one row exists per user; it is updated in place.
type CalorieTotal struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex:idx_cal_total_user;not null" json:"user_id"`
	CalTotal     float64   `gorm:"column:cal_total" json:"cal_total"`
	PriceTotal   float64   `gorm:"column:price_total" json:"price_total"`
	CarbsTotal   float64   `gorm:"column:carbs_total" json:"carbs_total"`
	ProteinTotal float64   `gorm:"column:protein_total" json:"protein_total"`
	FatTotal     float64   `gorm:"column:fat_total" json:"fat_total"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CalorieTotal) TableName() string { return "total_from_cal_tracker" }

func (t *CalorieTotal) SetOwner(userID uint) { t.UserID = userID }
func (t *CalorieTotal) Owner() uint          { return t.UserID }
