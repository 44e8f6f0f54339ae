package model

import (
	"time"

	"github.com/google/uuid"
)

type HiringManager struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Title     string    `gorm:"size:100" json:"title,omitempty"`
	AvatarURL string    `gorm:"size:255" json:"avatarUrl,omitempty"`
	IsPersona bool      `json:"isPersona"`
	Companies []Company `gorm:"many2many:hiring_manager_companies" json:"companies,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (hm *HiringManager) TableName() string {
	return "hiring_managers"
}
