package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/models"
)

func openHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "backoffice.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Event{},
		&models.Attendee{},
		&models.Discount{},
	))
	return db
}

func performListDiscounts(t *testing.T, db *gorm.DB, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if db != nil {
		c.Set("db", db)
	}
	ListDiscounts(c)
	return recorder
}

func TestListDiscountsRejectsMalformedUsedFilter(t *testing.T) {
	for _, value := range []string{"yes", "maybe", "2"} {
		recorder := performListDiscounts(t, nil, "/v1/discounts?used="+value)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "used=%s", value)
	}
}

func TestListDiscountsUsedFilter(t *testing.T) {
	db := openHandlerDB(t)

	owner := models.User{Email: "owner@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&owner).Error)
	event := models.Event{Name: "Lee Wedding", EventAt: owner.CreatedAt.AddDate(0, 3, 0), Type: models.EventTypeWedding, IsActive: true, UserID: owner.ID}
	require.NoError(t, db.Create(&event).Error)
	attendee := models.Attendee{EventID: event.ID, FirstName: "groom", IsActive: true}
	require.NoError(t, db.Create(&attendee).Error)

	redeemed := models.Discount{EventID: event.ID, AttendeeID: attendee.ID, Type: models.DiscountTypeGift, Code: "VV-REDEEMED", Used: true}
	require.NoError(t, db.Create(&redeemed).Error)
	outstanding := models.Discount{EventID: event.ID, AttendeeID: attendee.ID, Type: models.DiscountTypeGift, Code: "VV-OUTSTANDING"}
	require.NoError(t, db.Create(&outstanding).Error)

	cases := []struct {
		query    string
		wantCode string
	}{
		{"used=true", "VV-REDEEMED"},
		{"used=1", "VV-REDEEMED"},
		{"used=false", "VV-OUTSTANDING"},
	}
	for _, tc := range cases {
		recorder := performListDiscounts(t, db, "/v1/discounts?"+tc.query)
		require.Equal(t, http.StatusOK, recorder.Code, tc.query)

		var resp struct {
			Discounts []models.Discount `json:"discounts"`
			Total     int64             `json:"total"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp), tc.query)
		require.Len(t, resp.Discounts, 1, tc.query)
		assert.Equal(t, tc.wantCode, resp.Discounts[0].Code, tc.query)
		assert.Equal(t, int64(1), resp.Total, tc.query)
	}
}
