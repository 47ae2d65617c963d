// Package seed loads the sample restaurants, pizzas and offerings used for
// local development. The API itself never creates restaurants or pizzas.
package seed

import (
	"context"
	"fmt"

	"pizza-restaurant-api/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Run inserts the sample data unless restaurants or pizzas already exist.
// It reports whether anything was written.
func Run(ctx context.Context, db *gorm.DB, log zerolog.Logger) (bool, error) {
	var restaurants, pizzas int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if err := db.WithContext(ctx).Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("count pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info().Int64("restaurants", restaurants).Int64("pizzas", pizzas).Msg("seed skipped, tables not empty")
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shack := models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"}
		bistro := models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"}
		palace := models.Restaurant{Name: "Kiki's Pizza", Address: "address3"}
		if err := tx.Create(&[]*models.Restaurant{&shack, &bistro, &palace}).Error; err != nil {
			return fmt.Errorf("create restaurants: %w", err)
		}

		cheese := models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}
		pepperoni := models.Pizza{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}
		california := models.Pizza{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"}
		if err := tx.Create(&[]*models.Pizza{&cheese, &pepperoni, &california}).Error; err != nil {
			return fmt.Errorf("create pizzas: %w", err)
		}

		offerings := []models.RestaurantPizza{
			{RestaurantID: shack.ID, PizzaID: cheese.ID, Price: 1},
			{RestaurantID: bistro.ID, PizzaID: pepperoni.ID, Price: 4},
			{RestaurantID: palace.ID, PizzaID: california.ID, Price: 5},
		}
		if err := tx.Create(&offerings).Error; err != nil {
			return fmt.Errorf("create restaurant pizzas: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Info().Msg("seeded restaurants, pizzas and restaurant pizzas")
	return true, nil
}
