package service

import (
	"context"
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/types"
)

type noticeRepository interface {
	Create(ctx context.Context, notice *entity.Notice) error
	List(ctx context.Context) ([]*entity.Notice, error)
}

type NoticeService struct {
	noticeRepo noticeRepository
}

func NewNoticeService(noticeRepo noticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

func (s *NoticeService) CreateNotice(ctx context.Context, req *types.CreateNoticeRequest) (*entity.Notice, error) {
	if req.Notice == "" || req.Date == "" {
		return nil, ErrValidation
	}

	notice := &entity.Notice{
		Notice:    req.Notice,
		Date:      req.Date,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) ListNotices(ctx context.Context) ([]*entity.Notice, error) {
	return s.noticeRepo.List(ctx)
}
