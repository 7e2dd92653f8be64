package repository

import (
	"context"

	"github.com/hallworks/ms-go-hall/app/entity"
)

type ComplaintRepository struct {
	db DBTX
}

func NewComplaintRepository(db DBTX) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	query := `
		INSERT INTO complaints (email, subject, details, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		complaint.Email,
		complaint.Subject,
		complaint.Details,
		complaint.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	complaint.ID = uint64(id)
	return nil
}

func (r *ComplaintRepository) List(ctx context.Context) ([]*entity.Complaint, error) {
	query := `
		SELECT id, email, subject, details, created_at
		FROM complaints
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := make([]*entity.Complaint, 0)
	for rows.Next() {
		item := &entity.Complaint{}
		if err := rows.Scan(&item.ID, &item.Email, &item.Subject, &item.Details, &item.CreatedAt); err != nil {
			return nil, err
		}
		complaints = append(complaints, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}
