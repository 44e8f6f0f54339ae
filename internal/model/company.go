package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	Industry    string    `gorm:"size:50" json:"industry,omitempty"`
	Location    string    `gorm:"size:100" json:"location,omitempty"`
	Website     string    `gorm:"size:255" json:"website,omitempty"`
	LogoURL     string    `gorm:"size:255" json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Company) TableName() string {
	return "companies"
}

// HiringManagerCompany is the join row linking a hiring manager to a
// company. A manager can work across several companies.
type HiringManagerCompany struct {
	HiringManagerID uuid.UUID `gorm:"type:uuid;primaryKey" json:"hiringManagerId"`
	CompanyID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"companyId"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (HiringManagerCompany) TableName() string {
	return "hiring_manager_companies"
}
