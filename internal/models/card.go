package models

import "time"

// Card is a unit of content tracked through a platform and a workflow status.
// Date is a pointer so an unscheduled card serialises as null rather than "".
type Card struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Platform    string    `gorm:"not null;index:idx_cards_platform" json:"platform"`
	Status      string    `gorm:"not null;index:idx_cards_status" json:"status"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Type        string    `gorm:"default:post" json:"type"`
	Date        *string   `json:"date"`
	Priority    string    `gorm:"default:medium" json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
