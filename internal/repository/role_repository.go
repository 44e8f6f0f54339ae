package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	return translate(r.db.WithContext(ctx).Create(role).Error)
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Preload("Company").First(&role, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

// UpdateStatus writes only the status and soft-delete columns, leaving
// preloaded associations untouched.
func (r *RoleRepository) UpdateStatus(ctx context.Context, role *model.Role) error {
	result := r.db.WithContext(ctx).Model(&model.Role{}).
		Where("id = ?", role.ID).
		Updates(map[string]interface{}{
			"status":     role.Status,
			"deleted_at": role.DeletedAt,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *RoleRepository) CountApplications(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("role_id = ?", roleID).
		Count(&count).Error
	return count, translate(err)
}

// List applies the filter predicates and returns one page plus the total
// match count. Salary filters test range overlap: the role's max against
// the requested min and vice versa.
func (r *RoleRepository) List(ctx context.Context, filter dto.RoleFilter) ([]model.Role, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Role{})

	if filter.HiringManagerID != "" {
		q = q.Where("hiring_manager_id = ?", filter.HiringManagerID)
	} else {
		q = q.Where("status = ? AND deleted_at IS NULL", model.RoleStatusPublished)
	}
	if filter.CompanyID != "" {
		q = q.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.SalaryMin != nil {
		q = q.Where("salary_max >= ?", *filter.SalaryMin)
	}
	if filter.SalaryMax != nil {
		q = q.Where("salary_min <= ?", *filter.SalaryMax)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if filter.CandidateID != "" {
		q = q.Where("id NOT IN (?)",
			r.db.WithContext(ctx).Model(&model.Application{}).Select("role_id").Where("candidate_id = ?", filter.CandidateID))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var roles []model.Role
	err := q.Preload("Company").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&roles).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return roles, total, nil
}
