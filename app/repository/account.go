package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hallworks/ms-go-hall/app/entity"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create relies on the unique index on email: under concurrent signup for
// the same address, exactly one insert wins and the rest surface
// ErrAccountAlreadyExists.
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (email, name, role, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		account.Email,
		account.Name,
		account.Role,
		account.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrAccountAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	account.ID = uint64(id)
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `
		SELECT id, email, name, role, created_at
		FROM accounts
		WHERE email = ?
		LIMIT 1
	`

	account := &entity.Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.Role,
		&account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	query := `
		SELECT id, email, name, role, created_at
		FROM accounts
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*entity.Account, 0)
	for rows.Next() {
		item := &entity.Account{}
		if err := rows.Scan(&item.ID, &item.Email, &item.Name, &item.Role, &item.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *AccountRepository) UpdateRole(ctx context.Context, id uint64, role string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET role = ? WHERE id = ?`, role, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
