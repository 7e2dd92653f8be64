package mapper

import (
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/types"
)

func AccountToResponse(item *entity.Account) *types.AccountResponse {
	if item == nil {
		return nil
	}
	return &types.AccountResponse{
		ID:        item.ID,
		Email:     item.Email,
		Name:      item.Name,
		Role:      item.Role,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func AccountsToResponse(items []*entity.Account) []*types.AccountResponse {
	result := make([]*types.AccountResponse, 0, len(items))
	for _, item := range items {
		result = append(result, AccountToResponse(item))
	}
	return result
}

func FoodItemToResponse(item *entity.FoodItem) *types.FoodItemResponse {
	if item == nil {
		return nil
	}
	return &types.FoodItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		Category:  item.Category,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FoodItemsToResponse(items []*entity.FoodItem) []*types.FoodItemResponse {
	result := make([]*types.FoodItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, FoodItemToResponse(item))
	}
	return result
}

func ComplaintToResponse(item *entity.Complaint) *types.ComplaintResponse {
	if item == nil {
		return nil
	}
	return &types.ComplaintResponse{
		ID:        item.ID,
		Email:     item.Email,
		Subject:   item.Subject,
		Details:   item.Details,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ComplaintsToResponse(items []*entity.Complaint) []*types.ComplaintResponse {
	result := make([]*types.ComplaintResponse, 0, len(items))
	for _, item := range items {
		result = append(result, ComplaintToResponse(item))
	}
	return result
}

func NoticeToResponse(item *entity.Notice) *types.NoticeResponse {
	if item == nil {
		return nil
	}
	return &types.NoticeResponse{
		ID:        item.ID,
		Notice:    item.Notice,
		Date:      item.Date,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NoticesToResponse(items []*entity.Notice) []*types.NoticeResponse {
	result := make([]*types.NoticeResponse, 0, len(items))
	for _, item := range items {
		result = append(result, NoticeToResponse(item))
	}
	return result
}
