package models

import (
	"errors"

	"gorm.io/gorm"
)

// Domain error taxonomy. The store surfaces these to callers; the REST
// layer translates them into status codes and the batch jobs log them.
var (
	ErrNotFound             = errors.New("record not found")
	ErrUniqueness           = errors.New("uniqueness violation")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrValidation           = errors.New("validation failed")
)

// WrapDBError classifies a gorm error into the taxonomy above. Requires
// gorm.Config{TranslateError: true} so driver errors arrive as typed gorm
// sentinels. Unrecognized errors pass through unchanged.
func WrapDBError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Join(ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrUniqueness, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrReferentialIntegrity, err)
	}
	return err
}
