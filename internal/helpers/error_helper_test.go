package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/veilandvest/backoffice/internal/models"
)

func domainErrorStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	RespondWithDomainError(c, err, "fallback message")
	return recorder.Code
}

func TestRespondWithDomainError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, domainErrorStatus(t, models.ErrNotFound))
	assert.Equal(t, http.StatusConflict, domainErrorStatus(t, models.ErrUniqueness))
	assert.Equal(t, http.StatusUnprocessableEntity, domainErrorStatus(t, models.ErrReferentialIntegrity))
	assert.Equal(t, http.StatusBadRequest, domainErrorStatus(t, models.ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, domainErrorStatus(t, errors.New("anything else")))

	// Wrapped taxonomy errors classify the same as bare ones.
	wrapped := fmt.Errorf("creating discount: %w", models.ErrReferentialIntegrity)
	assert.Equal(t, http.StatusUnprocessableEntity, domainErrorStatus(t, wrapped))
}

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	RespondWithError(c, http.StatusConflict, "User already exists.")

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.JSONEq(t, `{"error":"Conflict","message":"User already exists."}`, recorder.Body.String())
}
