package domain

import "time"

// Profile stores a user's BMR/BMI calculation and macro split. One row per
// user, written through an upsert: created on first save, overwritten after.
type Profile struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"uniqueIndex:idx_profile_user;not null" json:"user_id"`
	BMR               float64   `gorm:"column:bmr" json:"bmr"`
	BMI               float64   `gorm:"column:bmi" json:"bmi"`
	WaterIntake       float64   `gorm:"column:water_intake" json:"water_intake"`
	WeightGain        float64   `gorm:"column:weight_gain" json:"weight_gain"`
	WeightLoss        float64   `gorm:"column:weight_loss" json:"weight_loss"`
	TDEE              float64   `gorm:"column:tdee" json:"tdee"`
	MacroRatio        float64   `gorm:"column:macro_ratio" json:"macro_ratio"`
	ProteinMacroRatio float64   `gorm:"column:protein_macro_ratio" json:"protein_macro_ratio"`
	FatMacroRatio     float64   `gorm:"column:fat_macro_ratio" json:"fat_macro_ratio"`
	CarbsMacroRatio   float64   `gorm:"column:carbs_macro_ratio" json:"carbs_macro_ratio"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "bmr_bmi_calculator" }

func (p *Profile) SetOwner(userID uint) { p.UserID = userID }
func (p *Profile) Owner() uint          { return p.UserID }
