package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/models"
)

func performActivateUser(t *testing.T, db *gorm.DB, role, userID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("db", db)
	if role != "" {
		c.Set("role", role)
	}
	c.Params = gin.Params{{Key: "id", Value: userID}}
	ActivateUser(c)
	return recorder
}

func TestActivateUserRequiresAdminRole(t *testing.T) {
	db := openHandlerDB(t)

	user := models.User{Email: "new@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	require.Equal(t, models.AccountStatusDisabled, user.AccountStatus)

	recorder := performActivateUser(t, db, "member", user.ID.String())
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = performActivateUser(t, db, "", user.ID.String())
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.AccountStatusDisabled, reloaded.AccountStatus)

	recorder = performActivateUser(t, db, "admin", user.ID.String())
	assert.Equal(t, http.StatusOK, recorder.Code)

	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, models.AccountStatusActive, reloaded.AccountStatus)
}
