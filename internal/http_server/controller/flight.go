// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FlightControllerInterface interface {
	SearchFlights(ctx echo.Context) error
	GetFlight(ctx echo.Context) error
	CreateFlight(ctx echo.Context) error
	UpdateFlight(ctx echo.Context) error
}

type FlightController struct {
	logger  log.LoggerInterface
	service FlightServiceInterface
}

func NewFlightController(logger log.LoggerInterface, service FlightServiceInterface) *FlightController {
	return &FlightController{
		logger:  logger,
		service: service,
	}
}

func (controller *FlightController) SearchFlights(ctx echo.Context) error {
	data := &RequestFlightSearch{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.SearchFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.SearchFlights(data).Response(ctx)
}

func (controller *FlightController) GetFlight(ctx echo.Context) error {
	data := &RequestFlightDetail{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetFlight(data).Response(ctx)
}

func (controller *FlightController) CreateFlight(ctx echo.Context) error {
	data := &RequestFlightCreate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.CreateFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.IsAdmin = claim.IsAdmin
	return controller.service.CreateFlight(data).Response(ctx)
}

func (controller *FlightController) UpdateFlight(ctx echo.Context) error {
	data := &RequestFlightUpdate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.UpdateFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.IsAdmin = claim.IsAdmin
	return controller.service.UpdateFlight(data).Response(ctx)
}
