package models

// Restaurant is seed data; the API never creates one.
type Restaurant struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name" gorm:"not null"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `json:"restaurant_pizzas,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}
