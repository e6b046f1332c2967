// Package service
package service

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/half-nothing/simple-booking/internal/interfaces/config"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	"github.com/half-nothing/simple-booking/internal/interfaces/operation"
	"gopkg.in/gomail.v2"
)

var (
	emailService *EmailService
	once         sync.Once
)

type EmailService struct {
	logger log.LoggerInterface
	config *config.EmailConfig
}

type BookingEmailData struct {
	FirstName      string
	LastName       string
	PNR            string
	FlightNumber   string
	Origin         string
	Destination    string
	Departure      string
	PassengerCount int
	TotalAmount    string
	PaymentStatus  string
}

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig) *EmailService {
	once.Do(func() {
		emailService = &EmailService{
			logger: logger,
			config: config,
		}
	})
	return emailService
}

var (
	ErrRenderingTemplate      = errors.New("error rendering template")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
)

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func bookingEmailData(user *operation.User, booking *operation.Booking) *BookingEmailData {
	data := &BookingEmailData{
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		PNR:            booking.PNR,
		PassengerCount: len(booking.Passengers),
		TotalAmount:    fmt.Sprintf("%.2f", booking.TotalAmount),
		PaymentStatus:  string(booking.PaymentStatus),
	}
	if booking.Flight != nil {
		data.FlightNumber = booking.Flight.FlightNumber
		data.Departure = booking.Flight.DepartureTime.Format("2006-01-02 15:04 MST")
		if booking.Flight.DepartureAirport != nil {
			data.Origin = booking.Flight.DepartureAirport.IataCode
		}
		if booking.Flight.ArrivalAirport != nil {
			data.Destination = booking.Flight.ArrivalAirport.IataCode
		}
	}
	return data
}

func (emailService *EmailService) send(email, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", emailService.config.Sender)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return emailService.config.EmailServer.DialAndSend(m)
}

func (emailService *EmailService) SendBookingConfirmedEmail(user *operation.User, booking *operation.Booking) error {
	if emailService.config.EmailServer == nil || !emailService.config.Template.EnableBookingConfirmedEmail {
		return nil
	}
	email := strings.ToLower(user.Email)

	message, err := emailService.RenderTemplate(
		emailService.config.Template.BookingConfirmedTemplate, bookingEmailData(user, booking))
	if err != nil {
		emailService.logger.WarnF("Error rendering booking confirmed template: %v", err)
		return ErrRenderingTemplate
	}

	emailService.logger.InfoF("Sending booking confirmed email for %s to %s", booking.PNR, email)

	return emailService.send(email, "Your booking is confirmed", message)
}

func (emailService *EmailService) SendBookingCancelledEmail(user *operation.User, booking *operation.Booking) error {
	if emailService.config.EmailServer == nil || !emailService.config.Template.EnableBookingCancelledEmail {
		return nil
	}
	email := strings.ToLower(user.Email)

	message, err := emailService.RenderTemplate(
		emailService.config.Template.BookingCancelledTemplate, bookingEmailData(user, booking))
	if err != nil {
		emailService.logger.WarnF("Error rendering booking cancelled template: %v", err)
		return ErrRenderingTemplate
	}

	emailService.logger.InfoF("Sending booking cancelled email for %s to %s", booking.PNR, email)

	return emailService.send(email, "Your booking has been cancelled", message)
}
