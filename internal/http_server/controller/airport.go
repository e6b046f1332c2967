// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AirportControllerInterface interface {
	GetAirports(ctx echo.Context) error
}

type AirportController struct {
	logger  log.LoggerInterface
	service AirportServiceInterface
}

func NewAirportController(logger log.LoggerInterface, service AirportServiceInterface) *AirportController {
	return &AirportController{
		logger:  logger,
		service: service,
	}
}

func (controller *AirportController) GetAirports(ctx echo.Context) error {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data := &RequestAirportList{}
	data.Uid = claim.Uid
	data.IsAdmin = claim.IsAdmin
	return controller.service.GetAirports(data).Response(ctx)
}
