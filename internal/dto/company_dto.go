package dto

type CreateCompanyRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Description     string `json:"description" validate:"omitempty,max=500"`
	Industry        string `json:"industry" validate:"omitempty,max=50"`
	Location        string `json:"location" validate:"omitempty,max=100"`
	Website         string `json:"website" validate:"omitempty,url"`
	HiringManagerID string `json:"hiringManagerId" validate:"required,uuid"`
}
