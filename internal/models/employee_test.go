package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalary(t *testing.T) {
	assert.Equal(t, 0.0, Salary(0, 25))
	assert.Equal(t, 0.0, Salary(40, 0))
	assert.Equal(t, 1000.0, Salary(40, 25))
	assert.Equal(t, 637.5, Salary(42.5, 15))
}

func TestSalary_MonotonicInHours(t *testing.T) {
	rate := 18.0
	assert.Less(t, Salary(10, rate), Salary(11, rate))
	assert.Less(t, Salary(11, rate), Salary(12, rate))
}
