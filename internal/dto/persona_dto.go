package dto

import (
	"github.com/fadilmartias/job-board/internal/model"
)

const (
	PersonaTypeHiringManager = "hiring-manager"
	PersonaTypeCandidate     = "candidate"
)

// CreatePersonaRequest covers both persona kinds; the company fields only
// apply when Type is "hiring-manager".
type CreatePersonaRequest struct {
	Type               string `json:"type" validate:"required,oneof=hiring-manager candidate"`
	Name               string `json:"name" validate:"required,max=100"`
	Email              string `json:"email" validate:"required,email"`
	Title              string `json:"title" validate:"omitempty,max=100"`
	Headline           string `json:"headline" validate:"omitempty,max=100"`
	CompanyName        string `json:"companyName" validate:"omitempty,max=100"`
	CompanyDescription string `json:"companyDescription" validate:"omitempty,max=500"`
	CompanyIndustry    string `json:"companyIndustry" validate:"omitempty,max=50"`
	CompanyLocation    string `json:"companyLocation" validate:"omitempty,max=100"`
}

type PersonaList struct {
	HiringManagers []model.HiringManager `json:"hiringManagers"`
	Candidates     []model.Candidate     `json:"candidates"`
}
