package service

import (
	"context"
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/types"
)

type foodRepository interface {
	Create(ctx context.Context, item *entity.FoodItem) error
	List(ctx context.Context) ([]*entity.FoodItem, error)
}

type FoodService struct {
	foodRepo foodRepository
}

func NewFoodService(foodRepo foodRepository) *FoodService {
	return &FoodService{foodRepo: foodRepo}
}

func (s *FoodService) CreateFood(ctx context.Context, req *types.CreateFoodRequest) (*entity.FoodItem, error) {
	if req.Name == "" || req.Price <= 0 {
		return nil, ErrValidation
	}

	item := &entity.FoodItem{
		Name:      req.Name,
		Price:     req.Price,
		Category:  req.Category,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.foodRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) ListFood(ctx context.Context) ([]*entity.FoodItem, error) {
	return s.foodRepo.List(ctx)
}
