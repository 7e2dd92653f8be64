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

type NoticeController struct {
	noticeService *service.NoticeService
	logger        logrus.FieldLogger
}

func NewNoticeController(noticeService *service.NoticeService) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
		logger:        factory.NewModuleLogger("notice-controller"),
	}
}

func (c *NoticeController) CreateNotice(ctx echo.Context) error {
	req, err := types.NewCreateNoticeRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.noticeService.CreateNotice(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Create notice failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.NoticeToResponse(item))
}

func (c *NoticeController) ListNotices(ctx echo.Context) error {
	items, err := c.noticeService.ListNotices(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List notices failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.NoticesToResponse(items))
}

func (c *NoticeController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
