package repository

import (
	"context"

	"github.com/hallworks/ms-go-hall/app/entity"
)

type NoticeRepository struct {
	db DBTX
}

func NewNoticeRepository(db DBTX) *NoticeRepository {
	return &NoticeRepository{db: db}
}

func (r *NoticeRepository) Create(ctx context.Context, notice *entity.Notice) error {
	query := `
		INSERT INTO notices (notice, date, created_at)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		notice.Notice,
		notice.Date,
		notice.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	notice.ID = uint64(id)
	return nil
}

func (r *NoticeRepository) List(ctx context.Context) ([]*entity.Notice, error) {
	query := `
		SELECT id, notice, date, created_at
		FROM notices
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := make([]*entity.Notice, 0)
	for rows.Next() {
		item := &entity.Notice{}
		if err := rows.Scan(&item.ID, &item.Notice, &item.Date, &item.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}
