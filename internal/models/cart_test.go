package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAdd(t *testing.T) {
	cart := Cart{}

	cart.Add("dish-a", 2)
	assert.Equal(t, 2, cart["dish-a"])

	cart.Add("dish-a", 3)
	assert.Equal(t, 5, cart["dish-a"])

	cart.Add("dish-a", -2)
	assert.Equal(t, 3, cart["dish-a"])
}

func TestCartAdd_RemovesEntryAtZero(t *testing.T) {
	cart := Cart{"dish-a": 2}

	cart.Add("dish-a", -2)

	_, exists := cart["dish-a"]
	assert.False(t, exists, "entry should be removed, not kept at zero")
	assert.Len(t, cart, 0)
}

func TestCartAdd_RemovesEntryBelowZero(t *testing.T) {
	cart := Cart{"dish-a": 1}

	cart.Add("dish-a", -10)

	_, exists := cart["dish-a"]
	assert.False(t, exists)
}

func TestCartAdd_NegativeDeltaOnMissingEntry(t *testing.T) {
	cart := Cart{}

	cart.Add("dish-a", -1)

	assert.Len(t, cart, 0)
}

func TestCartLineTotal(t *testing.T) {
	cart := Cart{"dish-a": 3}
	prices := func(dishID string) (float64, bool) {
		if dishID == "dish-a" {
			return 12.50, true
		}
		return 0, false
	}

	assert.Equal(t, 37.50, cart.LineTotal("dish-a", prices))
}

func TestCartLineTotal_MissingDishContributesZero(t *testing.T) {
	cart := Cart{"ghost": 4}
	prices := func(string) (float64, bool) { return 0, false }

	assert.Equal(t, 0.0, cart.LineTotal("ghost", prices))
}

func TestCartLineTotal_EntryNotInCart(t *testing.T) {
	cart := Cart{}
	prices := func(string) (float64, bool) { return 99, true }

	assert.Equal(t, 0.0, cart.LineTotal("dish-a", prices))
}

func TestCartLineTotal_UsesLivePrice(t *testing.T) {
	cart := Cart{"dish-a": 2}

	price := 10.0
	prices := func(string) (float64, bool) { return price, true }
	assert.Equal(t, 20.0, cart.LineTotal("dish-a", prices))

	// A price change is reflected immediately
	price = 15.0
	assert.Equal(t, 30.0, cart.LineTotal("dish-a", prices))
}

func TestCartGrandTotal(t *testing.T) {
	cart := Cart{"dish-a": 2, "dish-b": 1, "ghost": 5}
	prices := func(dishID string) (float64, bool) {
		switch dishID {
		case "dish-a":
			return 10.0, true
		case "dish-b":
			return 7.5, true
		}
		return 0, false
	}

	assert.Equal(t, 27.5, cart.GrandTotal(prices))
}

func TestCartItems_SortedByDishID(t *testing.T) {
	cart := Cart{"c": 1, "a": 3, "b": 2}

	items := cart.Items()

	assert.Equal(t, []CartItem{
		{DishID: "a", Quantity: 3},
		{DishID: "b", Quantity: 2},
		{DishID: "c", Quantity: 1},
	}, items)
}

func TestCartItems_Empty(t *testing.T) {
	cart := Cart{}
	assert.Empty(t, cart.Items())
}
