package mapper

import (
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/types"
)

func PaymentToResponse(item *entity.Payment) *types.PaymentRecordResponse {
	if item == nil {
		return nil
	}

	return &types.PaymentRecordResponse{
		PaymentID:   item.PaymentID,
		FoodID:      derefString(item.FoodID),
		Email:       item.Email,
		Price:       item.Price,
		Status:      item.Status,
		VerifyToken: item.VerifyToken,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func PaymentsToResponse(items []*entity.Payment) []*types.PaymentRecordResponse {
	result := make([]*types.PaymentRecordResponse, 0, len(items))
	for _, item := range items {
		result = append(result, PaymentToResponse(item))
	}
	return result
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
