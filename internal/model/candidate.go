package model

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Headline        string    `gorm:"size:100" json:"headline,omitempty"`
	YearsExperience *int      `json:"yearsExperience,omitempty"`
	Skills          string    `gorm:"size:500" json:"skills,omitempty"`
	Bio             string    `gorm:"size:1000" json:"bio,omitempty"`
	LinkedinURL     string    `gorm:"size:255" json:"linkedinUrl,omitempty"`
	AvatarURL       string    `gorm:"size:255" json:"avatarUrl,omitempty"`
	IsPersona       bool      `json:"isPersona"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
