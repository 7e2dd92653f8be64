package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/hallworks/ms-go-hall/app/factory"
	"github.com/hallworks/ms-go-hall/app/mapper"
	"github.com/hallworks/ms-go-hall/app/service"
	"github.com/hallworks/ms-go-hall/app/types"
	"github.com/hallworks/ms-go-hall/config"
)

type PaymentController struct {
	paymentService *service.PaymentService
	paymentsCfg    config.PaymentsConfig
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService, paymentsCfg config.PaymentsConfig) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		paymentsCfg:    paymentsCfg,
		logger:         factory.NewModuleLogger("payment-controller"),
	}
}

func (c *PaymentController) InitiatePayment(ctx echo.Context) error {
	req, err := types.NewInitiatePaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	_, paymentURL, err := c.paymentService.InitiatePayment(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPaymentInitiationFailed):
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Payment initiation failed")
			return c.writeError(ctx, http.StatusBadGateway, "payment gateway unavailable")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Initiate payment failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &types.InitiatePaymentResponse{PaymentURL: paymentURL})
}

// SuccessCallback is hit by the gateway after the customer completes
// checkout. The browser follows the gateway's POST, so the terminal
// response is a redirect back to the frontend rather than JSON.
func (c *PaymentController) SuccessCallback(ctx echo.Context) error {
	return c.handleCallback(ctx, c.paymentService.HandleSuccessCallback, c.paymentsCfg.SuccessRedirectURL)
}

func (c *PaymentController) FailureCallback(ctx echo.Context) error {
	return c.handleCallback(ctx, c.paymentService.HandleFailureCallback, c.paymentsCfg.FailureRedirectURL)
}

func (c *PaymentController) CancelCallback(ctx echo.Context) error {
	return c.handleCallback(ctx, c.paymentService.HandleCancelCallback, c.paymentsCfg.CancelRedirectURL)
}

func (c *PaymentController) handleCallback(ctx echo.Context, handle callbackHandler, redirectURL string) error {
	req, err := types.NewGatewayCallbackRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid callback payload")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	_, err = handle(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCallbackStatus), errors.Is(err, service.ErrCallbackRejected):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPaymentRecordNotFound):
			return c.writeError(ctx, http.StatusNotFound, "payment record not found")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Gateway callback failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.Redirect(http.StatusSeeOther, redirectURL)
}

func (c *PaymentController) FindFoodByEmail(ctx echo.Context) error {
	email := ctx.QueryParam("email")
	if email == "" {
		return c.writeError(ctx, http.StatusBadRequest, "email is required")
	}

	items, err := c.paymentService.GetPaymentHistory(ctx.Request().Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Find payments by email failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
	if len(items) == 0 {
		return ctx.JSON(http.StatusNotFound, &types.PaymentHistoryResponse{
			Success:  false,
			FoodData: []*types.PaymentRecordResponse{},
		})
	}

	return ctx.JSON(http.StatusOK, &types.PaymentHistoryResponse{
		Success:  true,
		FoodData: mapper.PaymentsToResponse(items),
	})
}

func (c *PaymentController) FindAllPayments(ctx echo.Context) error {
	items, err := c.paymentService.ListPayments(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List payments failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &types.PaymentHistoryResponse{
		Success:  true,
		FoodData: mapper.PaymentsToResponse(items),
	})
}

func (c *PaymentController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
