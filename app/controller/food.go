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

type FoodController struct {
	foodService *service.FoodService
	logger      logrus.FieldLogger
}

func NewFoodController(foodService *service.FoodService) *FoodController {
	return &FoodController{
		foodService: foodService,
		logger:      factory.NewModuleLogger("food-controller"),
	}
}

func (c *FoodController) CreateFood(ctx echo.Context) error {
	req, err := types.NewCreateFoodRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.foodService.CreateFood(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Create food failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.FoodItemToResponse(item))
}

func (c *FoodController) ListFood(ctx echo.Context) error {
	items, err := c.foodService.ListFood(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List food failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.FoodItemsToResponse(items))
}

func (c *FoodController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
