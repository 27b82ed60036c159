package domain

// APICredential holds the id/key pair for an external nutrition API the
// frontend calls through us. Seeded out-of-band, read-only at runtime.
type APICredential struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	Service string `gorm:"type:varchar(64);uniqueIndex:idx_credential_service;not null" json:"service"`
	APIID   string `gorm:"column:api_id;type:varchar(191);not null" json:"api_id"`
	APIKey  string `gorm:"column:api_key;type:varchar(191);not null" json:"api_key"`
}

func (APICredential) TableName() string { return "key_pass" }

// Known external services.
const (
	ServiceRecipe          = "recipe"
	ServiceMacroCalculator = "macro-calculator"
)
