package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fadilmartias/job-board/internal/dto"
)

// Persona is the identity the client acts as. It is chosen by the user
// and never verified by the server.
type Persona struct {
	Type            string `json:"type"` // "hiring-manager" or "candidate"
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ActiveCompanyID string `json:"activeCompanyId,omitempty"`
}

// PersonaStore persists the acting persona to a local JSON file — the
// explicit counterpart of the browser's local storage entry, with a
// defined load/save/clear lifecycle.
type PersonaStore struct {
	path string
}

func NewPersonaStore(path string) *PersonaStore {
	return &PersonaStore{path: path}
}

func DefaultPersonaStore() (*PersonaStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewPersonaStore(filepath.Join(dir, "job-board", "persona.json")), nil
}

// Load returns the stored persona, or nil when none is stored. A
// corrupted file is discarded rather than surfaced.
func (s *PersonaStore) Load() (*Persona, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var persona Persona
	if err := json.Unmarshal(raw, &persona); err != nil {
		_ = s.Clear()
		return nil, nil
	}
	return &persona, nil
}

func (s *PersonaStore) Save(persona *Persona) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(persona, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *PersonaStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// SetActiveCompany records which of a hiring manager's companies the
// client is currently operating as.
func (s *PersonaStore) SetActiveCompany(companyID string) error {
	persona, err := s.Load()
	if err != nil {
		return err
	}
	if persona == nil || persona.Type != dto.PersonaTypeHiringManager {
		return fmt.Errorf("no hiring manager persona selected")
	}
	persona.ActiveCompanyID = companyID
	return s.Save(persona)
}
