package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hallworks/ms-go-hall/app/types"
)

type SystemController struct {
	serviceName string
}

func NewSystemController(serviceName string) *SystemController {
	return &SystemController{serviceName: serviceName}
}

func (c *SystemController) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.MessageResponse{Message: c.serviceName + " is running"})
}

func (c *SystemController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}
