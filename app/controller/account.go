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
)

type AccountController struct {
	accountService *service.AccountService
	logger         logrus.FieldLogger
}

func NewAccountController(accountService *service.AccountService) *AccountController {
	return &AccountController{
		accountService: accountService,
		logger:         factory.NewModuleLogger("account-controller"),
	}
}

func (c *AccountController) CreateAccount(ctx echo.Context) error {
	req, err := types.NewCreateAccountRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.accountService.CreateAccount(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateResource):
			return c.writeError(ctx, http.StatusConflict, "account already exists")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Create account failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusCreated, mapper.AccountToResponse(item))
}

func (c *AccountController) ListAccounts(ctx echo.Context) error {
	items, err := c.accountService.ListAccounts(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List accounts failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.AccountsToResponse(items))
}

func (c *AccountController) UpdateAccountRole(ctx echo.Context) error {
	req, err := types.NewUpdateAccountRoleRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := c.accountService.UpdateRole(ctx.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			return c.writeError(ctx, http.StatusNotFound, "account not found")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Update account role failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &types.UpdateAccountRoleResponse{
		Success: true,
		Message: "role updated",
	})
}

func (c *AccountController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
