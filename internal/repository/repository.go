package repository

import (
	"errors"

	e "github.com/fadilmartias/job-board/internal/errors"
	"gorm.io/gorm"
)

// translate maps GORM errors onto the service's sentinel taxonomy. Unique
// constraint violations become ErrConflict so a racing duplicate insert
// fails cleanly; requires TranslateError on the gorm.Config.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return e.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return e.ErrConflict
	default:
		return err
	}
}
