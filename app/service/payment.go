package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/gateway"
	"github.com/hallworks/ms-go-hall/app/types"
	"github.com/hallworks/ms-go-hall/config"
)

const defaultBatchSize = int32(100)

type paymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByPaymentID(ctx context.Context, paymentID string) (*entity.Payment, error)
	TransitionStatus(ctx context.Context, paymentID, fromStatus, toStatus string, now time.Time) (bool, error)
	SetCheckoutURL(ctx context.Context, paymentID, checkoutURL string, now time.Time) error
	DeleteByPaymentID(ctx context.Context, paymentID string) error
	ListByEmail(ctx context.Context, email string) ([]*entity.Payment, error)
	ListAll(ctx context.Context) ([]*entity.Payment, error)
	ListStalePending(ctx context.Context, cutoff time.Time, limit int32) ([]*entity.Payment, error)
}

type paymentEventRepository interface {
	Create(ctx context.Context, event *entity.PaymentEvent) error
}

type paymentCallbackRepository interface {
	Create(ctx context.Context, callback *entity.PaymentCallback) error
}

type PaymentService struct {
	paymentRepo   paymentRepository
	eventRepo     paymentEventRepository
	callbackRepo  paymentCallbackRepository
	gateways      *gateway.Registry
	paymentsCfg   config.PaymentsConfig
	publicBaseURL string
}

func NewPaymentService(
	paymentRepo paymentRepository,
	eventRepo paymentEventRepository,
	callbackRepo paymentCallbackRepository,
	gateways *gateway.Registry,
	paymentsCfg config.PaymentsConfig,
	publicBaseURL string,
) *PaymentService {
	return &PaymentService{
		paymentRepo:   paymentRepo,
		eventRepo:     eventRepo,
		callbackRepo:  callbackRepo,
		gateways:      gateways,
		paymentsCfg:   paymentsCfg,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
	}
}

// InitiatePayment persists a pending record first and only then talks to the
// gateway, so a callback can never arrive for a record that does not exist.
// If the gateway call fails the pending record is rolled back; the operation
// is all-or-nothing from the caller's point of view.
func (s *PaymentService) InitiatePayment(ctx context.Context, req *types.InitiatePaymentRequest) (*entity.Payment, string, error) {
	if req.Data.Price <= 0 || len(req.Data.Items) == 0 || strings.TrimSpace(req.Data.Email) == "" {
		return nil, "", ErrValidation
	}

	gatewayClient, err := s.gateways.Get("sslcommerz")
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrPaymentInitiationFailed, err)
	}

	tranID := uuid.NewString()
	now := time.Now().UTC()

	payment := &entity.Payment{
		PaymentID:   tranID,
		FoodID:      normalizeOptionalString(req.Data.FoodID),
		Email:       req.Data.Email,
		Price:       req.Data.Price,
		Status:      entity.PaymentStatusPending,
		VerifyToken: 100000 + rand.Int32N(900000),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, "", err
	}

	_ = s.eventRepo.Create(ctx, &entity.PaymentEvent{
		PaymentID: payment.ID,
		EventType: "payment_created",
		NewStatus: payment.Status,
		CreatedAt: now,
	})

	output, err := gatewayClient.CreateSession(ctx, &gateway.InitiateInput{
		TranID:        tranID,
		Amount:        req.Data.Price,
		Currency:      s.paymentsCfg.Currency,
		Items:         req.Data.Items,
		CustomerName:  req.Data.Name,
		CustomerEmail: req.Data.Email,
		CustomerPhone: req.Data.Phone,
		SuccessURL:    s.publicBaseURL + "/success-payment",
		FailURL:       s.publicBaseURL + "/failure-payment",
		CancelURL:     s.publicBaseURL + "/cancel-payment",
	})
	if err != nil {
		s.rollbackInitiation(ctx, payment)
		return nil, "", fmt.Errorf("%w: %v", ErrPaymentInitiationFailed, err)
	}

	// Informational; the callback flow does not depend on it.
	_ = s.paymentRepo.SetCheckoutURL(ctx, tranID, output.PaymentURL, time.Now().UTC())
	payment.CheckoutURL = &output.PaymentURL

	return payment, output.PaymentURL, nil
}

func (s *PaymentService) rollbackInitiation(ctx context.Context, payment *entity.Payment) {
	now := time.Now().UTC()
	if err := s.paymentRepo.DeleteByPaymentID(ctx, payment.PaymentID); err != nil {
		// Leave the orphan pending record to the expiry job.
		return
	}
	oldStatus := payment.Status
	_ = s.eventRepo.Create(ctx, &entity.PaymentEvent{
		PaymentID: payment.ID,
		EventType: "payment_rolled_back",
		OldStatus: &oldStatus,
		NewStatus: entity.PaymentStatusCancelled,
		CreatedAt: now,
	})
}

// GetPaymentHistory lists the payment records for one customer email.
func (s *PaymentService) GetPaymentHistory(ctx context.Context, email string) ([]*entity.Payment, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrValidation
	}
	return s.paymentRepo.ListByEmail(ctx, email)
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	return s.paymentRepo.ListAll(ctx)
}

func (s *PaymentService) batchSize() int32 {
	if s.paymentsCfg.JobBatchSize > 0 {
		return s.paymentsCfg.JobBatchSize
	}
	return defaultBatchSize
}

func normalizeOptionalString(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
