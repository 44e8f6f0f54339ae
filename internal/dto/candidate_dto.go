package dto

type UpdateCandidateRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	LinkedinURL     string `json:"linkedinUrl" validate:"omitempty,url"`
	Headline        string `json:"headline" validate:"omitempty,max=100"`
	YearsExperience *int   `json:"yearsExperience" validate:"omitempty,min=0,max=50"`
	Skills          string `json:"skills" validate:"omitempty,max=500"`
	Bio             string `json:"bio" validate:"omitempty,max=1000"`
}
