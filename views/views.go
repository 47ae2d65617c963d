// Package views holds the fixed response shapes of each endpoint. Every type
// decides statically which relationships it carries, so a serialized graph
// can never loop back on itself.
package views

import "pizza-restaurant-api/models"

// RestaurantSummary is a restaurant without its offerings.
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is a pizza without its offerings.
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaWithPizza is an offering nested under its restaurant, so the
// restaurant itself is left out.
type RestaurantPizzaWithPizza struct {
	ID           uint         `json:"id"`
	Price        int          `json:"price"`
	PizzaID      uint         `json:"pizza_id"`
	RestaurantID uint         `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantDetail is a restaurant with its offerings and their pizzas.
type RestaurantDetail struct {
	ID               uint                       `json:"id"`
	Name             string                     `json:"name"`
	Address          string                     `json:"address"`
	RestaurantPizzas []RestaurantPizzaWithPizza `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreated is a new offering with both ends attached but
// neither end's own offering list.
type RestaurantPizzaCreated struct {
	ID           uint              `json:"id"`
	Price        int               `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

func NewRestaurantSummary(r models.Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewRestaurantSummaries(rs []models.Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewRestaurantSummary(r))
	}
	return out
}

func NewPizzaSummary(p models.Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func NewPizzaSummaries(ps []models.Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewPizzaSummary(p))
	}
	return out
}

// NewRestaurantDetail expects RestaurantPizzas and their Pizza to be loaded.
// An offering whose pizza was not loaded gets a summary carrying only its ID.
func NewRestaurantDetail(r models.Restaurant) RestaurantDetail {
	offerings := make([]RestaurantPizzaWithPizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offerings = append(offerings, RestaurantPizzaWithPizza{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        pizzaOf(rp),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: offerings,
	}
}

func NewRestaurantPizzaCreated(rp models.RestaurantPizza) RestaurantPizzaCreated {
	restaurant := RestaurantSummary{ID: rp.RestaurantID}
	if rp.Restaurant != nil {
		restaurant = NewRestaurantSummary(*rp.Restaurant)
	}
	return RestaurantPizzaCreated{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        pizzaOf(rp),
		Restaurant:   restaurant,
	}
}

func pizzaOf(rp models.RestaurantPizza) PizzaSummary {
	if rp.Pizza == nil {
		return PizzaSummary{ID: rp.PizzaID}
	}
	return NewPizzaSummary(*rp.Pizza)
}
