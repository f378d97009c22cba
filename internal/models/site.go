package models

import "time"

// Site is an affiliated location owned by a tenant. Capacity cells hang off
// it; the site directory itself is managed elsewhere.
type Site struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `gorm:"index;not null" json:"tenant_id"`
	Name     string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
