package entity

import "time"

type FoodItem struct {
	ID uint64

	Name     string
	Price    float64
	Category string

	CreatedAt time.Time
}
