package repository

import (
	"context"

	"github.com/hallworks/ms-go-hall/app/entity"
)

type FoodRepository struct {
	db DBTX
}

func NewFoodRepository(db DBTX) *FoodRepository {
	return &FoodRepository{db: db}
}

func (r *FoodRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	query := `
		INSERT INTO food_items (name, price, category, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Name,
		item.Price,
		item.Category,
		item.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = uint64(id)
	return nil
}

func (r *FoodRepository) List(ctx context.Context) ([]*entity.FoodItem, error) {
	query := `
		SELECT id, name, price, category, created_at
		FROM food_items
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.FoodItem, 0)
	for rows.Next() {
		item := &entity.FoodItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
