package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseSpecs(t *testing.T) {
	look := Look{ProductSpecs: datatypes.JSON(`{
		"bundle": {"product_id": 632910392, "variant_id": 39072856},
		"items": [
			{"variant_sku": "40102-38R", "color": "midnight"},
			{"variant_sku": "47311-M"}
		],
		"notes": "anything else in the document is ignored"
	}`)}

	envelope, err := look.ParseSpecs()
	require.NoError(t, err)
	assert.Equal(t, int64(632910392), envelope.Bundle.ProductID)
	assert.Equal(t, int64(39072856), envelope.Bundle.VariantID)
	require.Len(t, envelope.Items, 2)
	assert.Equal(t, "40102-38R", envelope.Items[0].VariantSKU)
	assert.Equal(t, "47311-M", envelope.Items[1].VariantSKU)
}

func TestParseSpecsRejectsMissingEnvelopeFields(t *testing.T) {
	cases := map[string]string{
		"empty document":     "",
		"not json":           "not a json document",
		"missing product id": `{"bundle": {"variant_id": 1}, "items": []}`,
		"missing sku":        `{"bundle": {"product_id": 9}, "items": [{"variant_sku": ""}]}`,
	}

	for name, specs := range cases {
		look := Look{ProductSpecs: datatypes.JSON(specs)}
		_, err := look.ParseSpecs()
		assert.ErrorIs(t, err, ErrValidation, name)
	}
}

func TestParseSpecsAllowsEmptyItems(t *testing.T) {
	look := Look{ProductSpecs: datatypes.JSON(`{"bundle": {"product_id": 77}}`)}
	envelope, err := look.ParseSpecs()
	require.NoError(t, err)
	assert.Empty(t, envelope.Items)
}
