// Package seed wipes the database and loads the embedded demo dataset.
// Entities in the dataset reference each other by string keys which are
// resolved to generated UUIDs during loading.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed data.json
var data []byte

// Run reseeds the database inside one transaction. Existing rows are
// removed in foreign-key order first; a reseed is the only way messages
// are ever deleted.
func Run(db *gorm.DB, logger *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}

		companies, err := loadCompanies(tx)
		if err != nil {
			return err
		}
		hiringManagers, err := loadHiringManagers(tx, companies)
		if err != nil {
			return err
		}
		candidates, err := loadCandidates(tx)
		if err != nil {
			return err
		}
		roles, err := loadRoles(tx, companies, hiringManagers)
		if err != nil {
			return err
		}
		applications, err := loadApplications(tx, roles, candidates)
		if err != nil {
			return err
		}
		if err := loadMessages(tx, applications); err != nil {
			return err
		}

		logger.Info("database reseeded",
			zap.Int("companies", len(companies)),
			zap.Int("hiring_managers", len(hiringManagers)),
			zap.Int("candidates", len(candidates)),
			zap.Int("roles", len(roles)),
			zap.Int("applications", len(applications)),
		)
		return nil
	})
}

func wipe(tx *gorm.DB) error {
	for _, m := range []any{
		&model.Message{},
		&model.Application{},
		&model.Role{},
		&model.HiringManagerCompany{},
		&model.HiringManager{},
		&model.Candidate{},
		&model.Company{},
	} {
		if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}
	}
	return nil
}

func loadCompanies(tx *gorm.DB) (map[string]uuid.UUID, error) {
	ids := map[string]uuid.UUID{}
	for _, c := range gjson.GetBytes(data, "companies").Array() {
		company := model.Company{
			ID:          uuid.New(),
			Name:        c.Get("name").String(),
			Description: c.Get("description").String(),
			Industry:    c.Get("industry").String(),
			Location:    c.Get("location").String(),
			Website:     c.Get("website").String(),
		}
		if err := tx.Create(&company).Error; err != nil {
			return nil, fmt.Errorf("seed company %q: %w", company.Name, err)
		}
		ids[c.Get("key").String()] = company.ID
	}
	return ids, nil
}

func loadHiringManagers(tx *gorm.DB, companies map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := map[string]uuid.UUID{}
	for _, h := range gjson.GetBytes(data, "hiringManagers").Array() {
		hm := model.HiringManager{
			ID:        uuid.New(),
			Name:      h.Get("name").String(),
			Email:     h.Get("email").String(),
			Title:     h.Get("title").String(),
			IsPersona: true,
		}
		if err := tx.Create(&hm).Error; err != nil {
			return nil, fmt.Errorf("seed hiring manager %q: %w", hm.Email, err)
		}
		for _, companyKey := range h.Get("companies").Array() {
			companyID, ok := companies[companyKey.String()]
			if !ok {
				return nil, fmt.Errorf("seed hiring manager %q: unknown company %q", hm.Email, companyKey.String())
			}
			link := model.HiringManagerCompany{HiringManagerID: hm.ID, CompanyID: companyID}
			if err := tx.Create(&link).Error; err != nil {
				return nil, fmt.Errorf("seed hiring manager link: %w", err)
			}
		}
		ids[h.Get("key").String()] = hm.ID
	}
	return ids, nil
}

func loadCandidates(tx *gorm.DB) (map[string]uuid.UUID, error) {
	ids := map[string]uuid.UUID{}
	for _, c := range gjson.GetBytes(data, "candidates").Array() {
		candidate := model.Candidate{
			ID:          uuid.New(),
			Name:        c.Get("name").String(),
			Email:       c.Get("email").String(),
			Headline:    c.Get("headline").String(),
			Skills:      c.Get("skills").String(),
			Bio:         c.Get("bio").String(),
			LinkedinURL: c.Get("linkedinUrl").String(),
			IsPersona:   true,
		}
		if y := c.Get("yearsExperience"); y.Exists() {
			years := int(y.Int())
			candidate.YearsExperience = &years
		}
		if err := tx.Create(&candidate).Error; err != nil {
			return nil, fmt.Errorf("seed candidate %q: %w", candidate.Email, err)
		}
		ids[c.Get("key").String()] = candidate.ID
	}
	return ids, nil
}

func loadRoles(tx *gorm.DB, companies, hiringManagers map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := map[string]uuid.UUID{}
	for _, r := range gjson.GetBytes(data, "roles").Array() {
		role := model.Role{
			ID:              uuid.New(),
			Title:           r.Get("title").String(),
			Description:     r.Get("description").String(),
			Location:        r.Get("location").String(),
			LocationType:    model.LocationType(r.Get("locationType").String()),
			SalaryCurrency:  "USD",
			EmploymentType:  model.EmploymentType(r.Get("employmentType").String()),
			ExperienceLevel: model.ExperienceLevel(r.Get("experienceLevel").String()),
			Status:          model.RoleStatus(r.Get("status").String()),
			CompanyID:       companies[r.Get("company").String()],
			HiringManagerID: hiringManagers[r.Get("hiringManager").String()],
		}
		if s := r.Get("salaryMin"); s.Exists() {
			v := int(s.Int())
			role.SalaryMin = &v
		}
		if s := r.Get("salaryMax"); s.Exists() {
			v := int(s.Int())
			role.SalaryMax = &v
		}
		if role.Status == model.RoleStatusClosed {
			now := time.Now()
			role.DeletedAt = &now
		}
		if err := tx.Create(&role).Error; err != nil {
			return nil, fmt.Errorf("seed role %q: %w", role.Title, err)
		}
		ids[r.Get("key").String()] = role.ID
	}
	return ids, nil
}

func loadApplications(tx *gorm.DB, roles, candidates map[string]uuid.UUID) (map[string]*model.Application, error) {
	apps := map[string]*model.Application{}
	for _, a := range gjson.GetBytes(data, "applications").Array() {
		application := model.Application{
			ID:          uuid.New(),
			RoleID:      roles[a.Get("role").String()],
			CandidateID: candidates[a.Get("candidate").String()],
			Status:      model.ApplicationStatus(a.Get("status").String()),
			CoverNote:   a.Get("coverNote").String(),
		}
		if err := tx.Create(&application).Error; err != nil {
			return nil, fmt.Errorf("seed application %q: %w", a.Get("key").String(), err)
		}
		apps[a.Get("key").String()] = &application
	}
	return apps, nil
}

func loadMessages(tx *gorm.DB, applications map[string]*model.Application) error {
	for _, m := range gjson.GetBytes(data, "messages").Array() {
		application, ok := applications[m.Get("application").String()]
		if !ok {
			return fmt.Errorf("seed message: unknown application %q", m.Get("application").String())
		}
		message := model.Message{
			ID:            uuid.New(),
			ApplicationID: application.ID,
			Content:       m.Get("content").String(),
			CreatedAt:     time.Now().Add(-time.Duration(m.Get("minutesAgo").Int()) * time.Minute),
		}
		if m.Get("from").String() == "hiring-manager" {
			var role model.Role
			if err := tx.First(&role, "id = ?", application.RoleID).Error; err != nil {
				return fmt.Errorf("seed message: %w", err)
			}
			message.HiringManagerID = &role.HiringManagerID
		} else {
			candidateID := application.CandidateID
			message.CandidateID = &candidateID
		}
		if err := tx.Create(&message).Error; err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}
	return nil
}
