// Package store is the persistence layer: lookups by primary key, full scans,
// and the two write paths the API exposes.
package store

import (
	"context"
	"errors"
	"fmt"

	"pizza-restaurant-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrValidation covers every rejected write: unknown references,
	// out-of-range prices and integrity violations raised by the database.
	ErrValidation = errors.New("validation failed")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListRestaurants returns every restaurant without associations.
func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetRestaurant loads a restaurant with its offerings and each offering's pizza.
func (s *Store) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return nil, lookupError("restaurant", id, err)
	}
	return &restaurant, nil
}

// DeleteRestaurant removes the restaurant and its offerings in one transaction
// and reports how many offerings went with it.
func (s *Store) DeleteRestaurant(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			return lookupError("restaurant", id, err)
		}

		res := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if res.Error != nil {
			return fmt.Errorf("delete offerings of restaurant %d: %w", id, res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// ListPizzas returns every pizza without associations.
func (s *Store) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *Store) GetPizza(ctx context.Context, id uint) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return nil, lookupError("pizza", id, err)
	}
	return &pizza, nil
}

// CreateRestaurantPizza resolves both references, inserts the offering and
// returns it with Pizza and Restaurant loaded. Any failure rolls the insert back.
func (s *Store) CreateRestaurantPizza(ctx context.Context, price int, pizzaID, restaurantID uint) (*models.RestaurantPizza, error) {
	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			return asValidation(lookupError("restaurant", restaurantID, err))
		}
		var pizza models.Pizza
		if err := tx.First(&pizza, pizzaID).Error; err != nil {
			return asValidation(lookupError("pizza", pizzaID, err))
		}

		created = models.RestaurantPizza{
			Price:        price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&created).Error; err != nil {
			if errors.Is(err, models.ErrPriceOutOfRange) || IsIntegrityError(err) {
				return fmt.Errorf("%w: %w", ErrValidation, err)
			}
			return fmt.Errorf("create restaurant pizza: %w", err)
		}

		created.Pizza = &pizza
		created.Restaurant = &restaurant
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// CountRestaurantPizzas returns the total number of offerings.
func (s *Store) CountRestaurantPizzas(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.RestaurantPizza{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count restaurant pizzas: %w", err)
	}
	return n, nil
}

// Ping checks that the underlying connection pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func lookupError(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return fmt.Errorf("find %s %d: %w", entity, id, err)
}

// asValidation folds a missing reference into ErrValidation; other lookup
// failures pass through untouched.
func asValidation(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}
