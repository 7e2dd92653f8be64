package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentAlreadyExists = errors.New("payment already exists")
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (
			payment_id, food_id, email, price, status, verify_token, checkout_url, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		payment.PaymentID,
		nullableStringValue(payment.FoodID),
		payment.Email,
		payment.Price,
		payment.Status,
		payment.VerifyToken,
		nullableStringValue(payment.CheckoutURL),
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrPaymentAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	payment.ID = uint64(id)
	return nil
}

func (r *PaymentRepository) FindByPaymentID(ctx context.Context, paymentID string) (*entity.Payment, error) {
	query := `
		SELECT id, payment_id, food_id, email, price, status, verify_token, checkout_url, created_at, updated_at
		FROM payments
		WHERE payment_id = ?
		LIMIT 1
	`

	payment := &entity.Payment{}
	if err := scanPayment(r.db.QueryRowContext(ctx, query, paymentID), payment); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return payment, nil
}

// TransitionStatus performs the single conditional write that guards the
// pending-to-terminal transition. It reports whether this call made the
// transition; false with no error means another writer already did.
func (r *PaymentRepository) TransitionStatus(ctx context.Context, paymentID, fromStatus, toStatus string, now time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET status = ?, updated_at = ?
		WHERE payment_id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query, toStatus, now, paymentID, fromStatus)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *PaymentRepository) SetCheckoutURL(ctx context.Context, paymentID, checkoutURL string, now time.Time) error {
	query := `
		UPDATE payments
		SET checkout_url = ?, updated_at = ?
		WHERE payment_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, checkoutURL, now, paymentID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// DeleteByPaymentID exists only for same-request rollback of an initiation
// whose gateway call failed. Completed records are never deleted.
func (r *PaymentRepository) DeleteByPaymentID(ctx context.Context, paymentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE payment_id = ?`, paymentID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	query := `
		SELECT id, payment_id, food_id, email, price, status, verify_token, checkout_url, created_at, updated_at
		FROM payments
		WHERE email = ?
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT id, payment_id, food_id, email, price, status, verify_token, checkout_url, created_at, updated_at
		FROM payments
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PaymentRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int32) ([]*entity.Payment, error) {
	query := `
		SELECT id, payment_id, food_id, email, price, status, verify_token, checkout_url, created_at, updated_at
		FROM payments
		WHERE status = ? AND created_at <= ?
		ORDER BY created_at ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, entity.PaymentStatusPending, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(scan rowScanner, payment *entity.Payment) error {
	var foodID sql.NullString
	var checkoutURL sql.NullString

	err := scan.Scan(
		&payment.ID,
		&payment.PaymentID,
		&foodID,
		&payment.Email,
		&payment.Price,
		&payment.Status,
		&payment.VerifyToken,
		&checkoutURL,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return err
	}

	payment.FoodID = stringPtrFromNull(foodID)
	payment.CheckoutURL = stringPtrFromNull(checkoutURL)
	return nil
}

func collectPayments(rows *sql.Rows) ([]*entity.Payment, error) {
	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		item := &entity.Payment{}
		if err := scanPayment(rows, item); err != nil {
			return nil, err
		}
		payments = append(payments, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}
