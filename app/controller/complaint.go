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

type ComplaintController struct {
	complaintService *service.ComplaintService
	logger           logrus.FieldLogger
}

func NewComplaintController(complaintService *service.ComplaintService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		logger:           factory.NewModuleLogger("complaint-controller"),
	}
}

func (c *ComplaintController) CreateComplaint(ctx echo.Context) error {
	req, err := types.NewCreateComplaintRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.complaintService.CreateComplaint(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Create complaint failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.ComplaintToResponse(item))
}

func (c *ComplaintController) ListComplaints(ctx echo.Context) error {
	items, err := c.complaintService.ListComplaints(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List complaints failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.ComplaintsToResponse(items))
}

func (c *ComplaintController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
