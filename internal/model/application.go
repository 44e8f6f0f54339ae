package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusNew       ApplicationStatus = "new"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Application is a candidate's submission against a role. The composite
// unique index keeps one application per (role, candidate) pair; under
// concurrent submissions the constraint, not application logic, decides
// the loser.
type Application struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	RoleID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_role_candidate" json:"roleId"`
	CandidateID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_role_candidate" json:"candidateId"`
	Status      ApplicationStatus `gorm:"size:20;not null" json:"status"`
	CoverNote   string            `gorm:"size:1000" json:"coverNote,omitempty"`
	Role        *Role             `json:"role,omitempty"`
	Candidate   *Candidate        `json:"candidate,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (a *Application) TableName() string {
	return "applications"
}
