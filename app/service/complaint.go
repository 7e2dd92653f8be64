package service

import (
	"context"
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/types"
)

type complaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	List(ctx context.Context) ([]*entity.Complaint, error)
}

type ComplaintService struct {
	complaintRepo complaintRepository
}

func NewComplaintService(complaintRepo complaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, req *types.CreateComplaintRequest) (*entity.Complaint, error) {
	if req.Email == "" || req.Details == "" {
		return nil, ErrValidation
	}

	complaint := &entity.Complaint{
		Email:     req.Email,
		Subject:   req.Subject,
		Details:   req.Details,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *ComplaintService) ListComplaints(ctx context.Context) ([]*entity.Complaint, error) {
	return s.complaintRepo.List(ctx)
}
