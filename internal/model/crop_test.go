package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSellerCategory_Valid(t *testing.T) {
	for _, c := range SellerCategories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, SellerCategory("").Valid())
	assert.False(t, SellerCategory("farmer").Valid())
	assert.Equal(t, "Farmer, Wholesaler, Cooperative", SellerCategoryNames())
}
