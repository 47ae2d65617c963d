package models

type Pizza struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name" gorm:"not null"`
	Ingredients      string            `json:"ingredients"`
	RestaurantPizzas []RestaurantPizza `json:"restaurant_pizzas,omitempty" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
}
