// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	. "github.com/half-nothing/simple-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type BookingControllerInterface interface {
	CreateBooking(ctx echo.Context) error
	GetMyBookings(ctx echo.Context) error
	GetBooking(ctx echo.Context) error
	GetBookingByPnrAndName(ctx echo.Context) error
	CancelBooking(ctx echo.Context) error
	UpdatePassenger(ctx echo.Context) error
}

type BookingController struct {
	logger  log.LoggerInterface
	service BookingServiceInterface
}

func NewBookingController(logger log.LoggerInterface, service BookingServiceInterface) *BookingController {
	return &BookingController{
		logger:  logger,
		service: service,
	}
}

func (controller *BookingController) CreateBooking(ctx echo.Context) error {
	data := &RequestBookingCreate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("BookingController.CreateBooking bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	return controller.service.CreateBooking(data).Response(ctx)
}

func (controller *BookingController) GetMyBookings(ctx echo.Context) error {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data := &RequestMyBookings{}
	data.Uid = claim.Uid
	return controller.service.GetMyBookings(data).Response(ctx)
}

func (controller *BookingController) GetBooking(ctx echo.Context) error {
	data := &RequestBookingDetail{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("BookingController.GetBooking bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	return controller.service.GetBooking(data).Response(ctx)
}

func (controller *BookingController) GetBookingByPnrAndName(ctx echo.Context) error {
	data := &RequestBookingByPnrName{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("BookingController.GetBookingByPnrAndName bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetBookingByPnrAndName(data).Response(ctx)
}

func (controller *BookingController) CancelBooking(ctx echo.Context) error {
	data := &RequestBookingCancel{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("BookingController.CancelBooking bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	return controller.service.CancelBooking(data).Response(ctx)
}

func (controller *BookingController) UpdatePassenger(ctx echo.Context) error {
	data := &RequestPassengerUpdate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("BookingController.UpdatePassenger bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	return controller.service.UpdatePassenger(data).Response(ctx)
}
