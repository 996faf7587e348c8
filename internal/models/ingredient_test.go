package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowStock(t *testing.T) {
	tests := []struct {
		stock int
		limit int
		want  bool
	}{
		{0, 5, true},
		{4, 5, true},
		{5, 5, true}, // boundary counts as low
		{6, 5, false},
		{100, 5, false},
		{0, 0, true},
	}

	for _, tt := range tests {
		ing := &Ingredient{Stock: tt.stock, StockLimit: tt.limit}
		assert.Equal(t, tt.want, ing.LowStock(), "stock=%d limit=%d", tt.stock, tt.limit)
	}
}

func TestValidUnitOfMeasure(t *testing.T) {
	for _, u := range []string{"kg", "g", "L", "ml", "unidades", "piezas", "oz", "lb", "gal", "qt"} {
		assert.True(t, ValidUnitOfMeasure(u), u)
	}
	assert.False(t, ValidUnitOfMeasure("toneladas"))
	assert.False(t, ValidUnitOfMeasure(""))
	assert.False(t, ValidUnitOfMeasure("KG"))
}
