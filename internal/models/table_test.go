package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableLabel(t *testing.T) {
	table := &Table{Cod: "M12", Capacity: 4}
	assert.Equal(t, "Mesa M12 - 4 personas", table.Label())

	table = &Table{Cod: "T1", Capacity: 1}
	assert.Equal(t, "Mesa T1 - 1 personas", table.Label())
}
