package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreateFoodRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func NewCreateFoodRequestFromContext(ctx echo.Context) (*CreateFoodRequest, error) {
	var body CreateFoodRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Category = strings.TrimSpace(body.Category)

	return &body, nil
}

func (r *CreateFoodRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Price <= 0 {
		return errors.New("price must be > 0")
	}
	return nil
}

type FoodItemResponse struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	CreatedAt string  `json:"createdAt"`
}
