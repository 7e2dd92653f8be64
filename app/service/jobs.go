package service

import (
	"context"
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
)

// RunExpirePendingBatch cancels pending records whose gateway outcome never
// arrived. The conditional transition keeps it safe against a callback
// landing mid-batch.
func (s *PaymentService) RunExpirePendingBatch(ctx context.Context) error {
	now := time.Now().UTC()
	cutoff := now.Add(-s.paymentsCfg.PendingTimeout)

	items, err := s.paymentRepo.ListStalePending(ctx, cutoff, s.batchSize())
	if err != nil {
		return err
	}

	var firstErr error
	for _, payment := range items {
		if payment == nil || entity.TerminalPaymentStatus(payment.Status) {
			continue
		}

		transitioned, err := s.paymentRepo.TransitionStatus(ctx, payment.PaymentID, entity.PaymentStatusPending, entity.PaymentStatusCancelled, now)
		if err != nil {
			firstErr = keepFirstErr(firstErr, err)
			continue
		}
		if !transitioned {
			continue
		}

		oldStatus := payment.Status
		_ = s.eventRepo.Create(ctx, &entity.PaymentEvent{
			PaymentID: payment.ID,
			EventType: "payment_expired",
			OldStatus: &oldStatus,
			NewStatus: entity.PaymentStatusCancelled,
			CreatedAt: now,
		})
	}

	return firstErr
}

func keepFirstErr(current, candidate error) error {
	if current != nil {
		return current
	}
	return candidate
}
