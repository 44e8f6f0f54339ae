package dto

import (
	"github.com/fadilmartias/job-board/internal/model"
)

type CreateApplicationRequest struct {
	RoleID      string `json:"roleId" validate:"required,uuid"`
	CandidateID string `json:"candidateId" validate:"required,uuid"`
	CoverNote   string `json:"coverNote" validate:"omitempty,max=1000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewing interview accepted rejected"`
}

// ApplicationItem decorates an application with the derived messaging gate
// for candidate-facing lists.
type ApplicationItem struct {
	model.Application
	MessagingAvailable bool `json:"messagingAvailable"`
}
