package service

import (
	"context"
	"strings"
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/gateway"
	"github.com/hallworks/ms-go-hall/app/types"
)

// HandleSuccessCallback accepts only the gateway's valid/paid status token;
// anything else is rejected and the record stays pending.
func (s *PaymentService) HandleSuccessCallback(ctx context.Context, req *types.GatewayCallbackRequest) (*entity.Payment, error) {
	return s.handleCallback(ctx, "success-payment", entity.PaymentStatusSuccess, true, req)
}

// HandleFailureCallback maps any payload for a known transaction to failed.
func (s *PaymentService) HandleFailureCallback(ctx context.Context, req *types.GatewayCallbackRequest) (*entity.Payment, error) {
	return s.handleCallback(ctx, "failure-payment", entity.PaymentStatusFailed, false, req)
}

// HandleCancelCallback maps any payload for a known transaction to cancelled.
func (s *PaymentService) HandleCancelCallback(ctx context.Context, req *types.GatewayCallbackRequest) (*entity.Payment, error) {
	return s.handleCallback(ctx, "cancel-payment", entity.PaymentStatusCancelled, false, req)
}

func (s *PaymentService) handleCallback(
	ctx context.Context,
	endpoint string,
	targetStatus string,
	requireValidStatus bool,
	req *types.GatewayCallbackRequest,
) (*entity.Payment, error) {
	if strings.TrimSpace(req.TranID) == "" {
		return nil, ErrValidation
	}

	gatewayClient, err := s.gateways.Get("sslcommerz")
	if err != nil {
		return nil, err
	}

	if err := gatewayClient.VerifyCallback(req.Values); err != nil {
		s.persistCallback(ctx, nil, endpoint, req, entity.PaymentCallbackStatusRejected, err.Error())
		return nil, ErrCallbackRejected
	}

	if requireValidStatus && !validGatewayStatus(req.Status) {
		s.persistCallback(ctx, nil, endpoint, req, entity.PaymentCallbackStatusRejected, "callback status is not valid: "+req.Status)
		return nil, ErrInvalidCallbackStatus
	}

	payment, err := s.paymentRepo.FindByPaymentID(ctx, req.TranID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		s.persistCallback(ctx, nil, endpoint, req, entity.PaymentCallbackStatusRejected, "no payment record for tran_id")
		return nil, ErrPaymentRecordNotFound
	}

	now := time.Now().UTC()
	transitioned, err := s.paymentRepo.TransitionStatus(ctx, payment.PaymentID, entity.PaymentStatusPending, targetStatus, now)
	if err != nil {
		return nil, err
	}

	if transitioned {
		oldStatus := payment.Status
		payment.Status = targetStatus
		payment.UpdatedAt = now

		payload := req.PayloadJSON()
		_ = s.eventRepo.Create(ctx, &entity.PaymentEvent{
			PaymentID:   payment.ID,
			EventType:   "payment_" + targetStatus,
			OldStatus:   &oldStatus,
			NewStatus:   targetStatus,
			PayloadJSON: &payload,
			CreatedAt:   now,
		})
	} else {
		// Another delivery of the same outcome got there first, or the
		// record is already terminal. Duplicate webhook deliveries are
		// acknowledged as a no-op.
		refreshed, err := s.paymentRepo.FindByPaymentID(ctx, payment.PaymentID)
		if err != nil {
			return nil, err
		}
		if refreshed != nil {
			payment = refreshed
		}
	}

	s.persistCallback(ctx, &payment.ID, endpoint, req, entity.PaymentCallbackStatusProcessed, "")

	return payment, nil
}

func (s *PaymentService) persistCallback(
	ctx context.Context,
	paymentID *uint64,
	endpoint string,
	req *types.GatewayCallbackRequest,
	status int32,
	reason string,
) {
	callback := &entity.PaymentCallback{
		PaymentID:   paymentID,
		Endpoint:    endpoint,
		TranID:      strings.TrimSpace(req.TranID),
		PayloadJSON: req.PayloadJSON(),
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		trimmed := truncate(reason, 1024)
		callback.Error = &trimmed
	}
	_ = s.callbackRepo.Create(ctx, callback)
}

func validGatewayStatus(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case gateway.SSLCommerzStatusValid, gateway.SSLCommerzStatusValidated:
		return true
	default:
		return false
	}
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max]
}
