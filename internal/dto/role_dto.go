package dto

import (
	"github.com/fadilmartias/job-board/internal/model"
)

type CreateRoleRequest struct {
	Title           string `json:"title" validate:"required,max=100"`
	Description     string `json:"description" validate:"required,min=10,max=5000"`
	Location        string `json:"location" validate:"required,max=100"`
	LocationType    string `json:"locationType" validate:"required,oneof=onsite remote hybrid"`
	SalaryMin       *int   `json:"salaryMin" validate:"omitempty,min=0"`
	SalaryMax       *int   `json:"salaryMax" validate:"omitempty,min=0"`
	SalaryCurrency  string `json:"salaryCurrency"`
	EmploymentType  string `json:"employmentType" validate:"required,oneof=full-time part-time contract internship"`
	ExperienceLevel string `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior lead"`
	Status          string `json:"status" validate:"omitempty,oneof=draft published"`
	CompanyID       string `json:"companyId" validate:"required,uuid"`
	HiringManagerID string `json:"hiringManagerId" validate:"required,uuid"`
}

type UpdateRoleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published closed"`
}

// RoleFilter carries the query parameters of the role listing endpoint.
// A non-empty HiringManagerID switches from the candidate-facing view
// (published, not deleted) to the hiring console view (all statuses).
type RoleFilter struct {
	CompanyID       string
	Location        string
	SalaryMin       *int
	SalaryMax       *int
	Search          string
	CandidateID     string
	HiringManagerID string
	Page            int
	Limit           int
}

type RoleDetail struct {
	model.Role
	ApplicationCount int64 `json:"applicationCount"`
}
