package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrice(t *testing.T) {
	for _, price := range []int{MinPrice, 5, 15, MaxPrice} {
		assert.NoError(t, ValidatePrice(price), "price %d", price)
	}
	for _, price := range []int{-1, 0, MaxPrice + 1, 100} {
		assert.ErrorIs(t, ValidatePrice(price), ErrPriceOutOfRange, "price %d", price)
	}
}

func TestBeforeSave(t *testing.T) {
	assert.NoError(t, (&RestaurantPizza{Price: 30}).BeforeSave(nil))
	assert.ErrorIs(t, (&RestaurantPizza{Price: 31}).BeforeSave(nil), ErrPriceOutOfRange)
}
