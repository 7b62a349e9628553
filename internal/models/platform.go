package models

// Platform is a destination channel a card can be published to.
// Card.Platform references Platform.ID but no foreign key is enforced.
type Platform struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}
