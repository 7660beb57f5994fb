package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountMarkUsedIsOneWay(t *testing.T) {
	discount := Discount{Type: DiscountTypePartyOfFour}

	require.NoError(t, discount.MarkUsed())
	assert.True(t, discount.Used)

	// A second redemption fails and never resets the flag.
	err := discount.MarkUsed()
	assert.ErrorIs(t, err, ErrDiscountUsed)
	assert.True(t, discount.Used)
}

func TestValidDiscountType(t *testing.T) {
	assert.True(t, ValidDiscountType(DiscountTypeGift))
	assert.True(t, ValidDiscountType(DiscountTypeFullPay))
	assert.True(t, ValidDiscountType(DiscountTypePartyOfFour))
	assert.False(t, ValidDiscountType(""))
	assert.False(t, ValidDiscountType("gift"))
	assert.False(t, ValidDiscountType("BOGO"))
}
