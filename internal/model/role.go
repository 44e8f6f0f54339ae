package model

import (
	"time"

	"github.com/google/uuid"
)

type RoleStatus string

const (
	RoleStatusDraft     RoleStatus = "draft"
	RoleStatusPublished RoleStatus = "published"
	RoleStatusClosed    RoleStatus = "closed"
)

type LocationType string

const (
	LocationOnsite LocationType = "onsite"
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

// Role is a job posting. Closing a role sets DeletedAt (soft delete);
// reopening clears it. DeletedAt is a plain timestamp, not gorm.DeletedAt,
// so closed roles remain reachable by the hiring console.
type Role struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string          `gorm:"size:100;not null" json:"title"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Location        string          `gorm:"size:100" json:"location"`
	LocationType    LocationType    `gorm:"size:20" json:"locationType"`
	SalaryMin       *int            `json:"salaryMin,omitempty"`
	SalaryMax       *int            `json:"salaryMax,omitempty"`
	SalaryCurrency  string          `gorm:"size:3;default:USD" json:"salaryCurrency"`
	EmploymentType  EmploymentType  `gorm:"size:20" json:"employmentType"`
	ExperienceLevel ExperienceLevel `gorm:"size:20" json:"experienceLevel,omitempty"`
	Status          RoleStatus      `gorm:"size:20;index;not null" json:"status"`
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;index;not null" json:"companyId"`
	Company         *Company        `json:"company,omitempty"`
	HiringManagerID uuid.UUID       `gorm:"type:uuid;index;not null" json:"hiringManagerId"`
	HiringManager   *HiringManager  `json:"hiringManager,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (r *Role) TableName() string {
	return "roles"
}

// Open reports whether candidates may view and apply to the role.
func (r *Role) Open() bool {
	return r.Status == RoleStatusPublished && r.DeletedAt == nil
}
