package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Inclusive bounds for RestaurantPizza.Price.
const (
	MinPrice = 1
	MaxPrice = 30
)

// ErrPriceOutOfRange is returned by the save hook before anything reaches the table.
var ErrPriceOutOfRange = errors.New("price out of range")

// RestaurantPizza is the price at which a restaurant offers a pizza.
type RestaurantPizza struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Price        int         `json:"price" gorm:"not null;check:chk_restaurant_pizzas_price,price BETWEEN 1 AND 30"`
	PizzaID      uint        `json:"pizza_id" gorm:"not null;index"`
	Pizza        *Pizza      `json:"pizza,omitempty" gorm:"foreignKey:PizzaID"`
	RestaurantID uint        `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
}

// ValidatePrice reports whether price lies in [MinPrice, MaxPrice].
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPriceOutOfRange, price, MinPrice, MaxPrice)
	}
	return nil
}

// BeforeSave rejects out-of-range prices on every insert and update.
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}
