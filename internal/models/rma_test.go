package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The type set must survive a database round trip with insertion order
// intact; the order carries no meaning but is never reshuffled.
func TestRMATypeSetRoundTrip(t *testing.T) {
	original := pq.StringArray{RMATypeDamaged, RMATypeExchange, RMATypeResize}

	stored, err := original.Value()
	require.NoError(t, err)

	var restored pq.StringArray
	require.NoError(t, restored.Scan(stored))

	assert.Equal(t, original, restored)
}

func TestRMABeforeCreateDefaults(t *testing.T) {
	rma := RMA{}
	require.NoError(t, rma.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, rma.ID)
	assert.Equal(t, RMAStatusPending, rma.Status)

	// Historic statuses read back from storage are never rewritten.
	closed := RMA{Status: RMAStatusClosed}
	require.NoError(t, closed.BeforeCreate(nil))
	assert.Equal(t, RMAStatusClosed, closed.Status)
}

func TestValidRMAItemType(t *testing.T) {
	for _, valid := range []string{
		RMAItemTypeDisliked, RMAItemTypeTooBig, RMAItemTypeTooSmall,
		RMAItemTypeDamaged, RMAItemTypeWrongItem,
	} {
		assert.True(t, ValidRMAItemType(valid), valid)
	}
	assert.False(t, ValidRMAItemType(""))
	assert.False(t, ValidRMAItemType("TOO_LONG"))
}
