package reconcile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/veilandvest/backoffice/internal/models"
)

func strPtr(s string) *string { return &s }

func TestDistinctCustomerIDs(t *testing.T) {
	shared := strPtr("cust-1")
	events := []models.Event{
		{User: &models.User{ShopifyCustomerID: shared}},
		{User: &models.User{ShopifyCustomerID: strPtr("cust-2")}},
		{User: &models.User{ShopifyCustomerID: shared}}, // same owner, second event
		{User: &models.User{}},                          // no platform record
		{User: &models.User{ShopifyCustomerID: strPtr("")}},
		{}, // owner not preloaded
	}

	assert.Equal(t, []string{"cust-1", "cust-2"}, DistinctCustomerIDs(events))
	assert.Empty(t, DistinctCustomerIDs(nil))
}

func TestGroupByEmail(t *testing.T) {
	older := models.User{ID: uuid.New(), Email: "a@b.com", CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.User{ID: uuid.New(), Email: "a@b.com", CreatedAt: time.Now()}
	lone := models.User{ID: uuid.New(), Email: "c@d.com"}

	groups := GroupByEmail([]models.User{older, newer, lone})

	assert.Len(t, groups, 2)
	assert.Equal(t, []models.User{older, newer}, groups["a@b.com"])
	assert.Equal(t, []models.User{lone}, groups["c@d.com"])
}

func TestPickKeeper(t *testing.T) {
	older := models.User{ID: uuid.New(), CreatedAt: time.Now().Add(-48 * time.Hour)}
	newer := models.User{ID: uuid.New(), CreatedAt: time.Now()}

	keeper, dupe := PickKeeper(older, newer)
	assert.Equal(t, older.ID, keeper.ID)
	assert.Equal(t, newer.ID, dupe.ID)

	// Argument order must not matter.
	keeper, dupe = PickKeeper(newer, older)
	assert.Equal(t, older.ID, keeper.ID)
	assert.Equal(t, newer.ID, dupe.ID)
}
