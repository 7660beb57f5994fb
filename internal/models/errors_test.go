package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapDBError(t *testing.T) {
	assert.NoError(t, WrapDBError(nil))

	assert.ErrorIs(t, WrapDBError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, WrapDBError(gorm.ErrDuplicatedKey), ErrUniqueness)
	assert.ErrorIs(t, WrapDBError(gorm.ErrForeignKeyViolated), ErrReferentialIntegrity)

	// The original gorm error stays inspectable through the wrapper.
	assert.ErrorIs(t, WrapDBError(gorm.ErrRecordNotFound), gorm.ErrRecordNotFound)

	// Unclassified errors pass through untouched.
	plain := errors.New("disk on fire")
	assert.Equal(t, plain, WrapDBError(plain))
}
