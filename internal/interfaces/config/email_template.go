// Package config
package config

import (
	"errors"
	"html/template"
	"os"
	"path/filepath"

	"github.com/half-nothing/simple-booking/internal/interfaces/global"
	"github.com/half-nothing/simple-booking/internal/interfaces/log"
)

type EmailTemplateConfig struct {
	BookingConfirmedTemplateFile string             `json:"booking_confirmed_template_file"`
	BookingConfirmedTemplate     *template.Template `json:"-"`
	EnableBookingConfirmedEmail  bool               `json:"enable_booking_confirmed_email"`
	BookingCancelledTemplateFile string             `json:"booking_cancelled_template_file"`
	BookingCancelledTemplate     *template.Template `json:"-"`
	EnableBookingCancelledEmail  bool               `json:"enable_booking_cancelled_email"`
}

func defaultEmailTemplateConfig() *EmailTemplateConfig {
	return &EmailTemplateConfig{
		BookingConfirmedTemplateFile: "template/booking_confirmed.template",
		EnableBookingConfirmedEmail:  true,
		BookingCancelledTemplateFile: "template/booking_cancelled.template",
		EnableBookingCancelledEmail:  true,
	}
}

const defaultBookingConfirmedTemplate = `<html><body>
<h2>Booking confirmed</h2>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Your booking <b>{{.PNR}}</b> on flight <b>{{.FlightNumber}}</b>
({{.Origin}} &rarr; {{.Destination}}) departing {{.Departure}} is confirmed.</p>
<p>Passengers: {{.PassengerCount}}, total amount: {{.TotalAmount}}.</p>
</body></html>`

const defaultBookingCancelledTemplate = `<html><body>
<h2>Booking cancelled</h2>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Your booking <b>{{.PNR}}</b> on flight <b>{{.FlightNumber}}</b> has been cancelled.</p>
<p>Refund status: {{.PaymentStatus}}.</p>
</body></html>`

// templateContent reads the template file, creating it with the built-in
// default when it does not exist yet.
func templateContent(logger log.LoggerInterface, filePath, defaultContent string) ([]byte, error) {
	if content, err := os.ReadFile(filePath); err == nil {
		return content, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	logger.InfoF("%s not found, writing built-in default", filePath)

	if err := os.MkdirAll(filepath.Dir(filePath), global.DefaultDirectoryPermission); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filePath, []byte(defaultContent), global.DefaultFilePermissions); err != nil {
		return nil, err
	}
	return []byte(defaultContent), nil
}

func (config *EmailTemplateConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.EnableBookingConfirmedEmail {
		if bytes, err := templateContent(logger, config.BookingConfirmedTemplateFile, defaultBookingConfirmedTemplate); err != nil {
			return ValidFailWith(errors.New("fail to load booking_confirmed_template_file"), err)
		} else if parse, err := template.New("booking_confirmed").Parse(string(bytes)); err != nil {
			return ValidFailWith(errors.New("fail to parse booking_confirmed_template"), err)
		} else {
			config.BookingConfirmedTemplate = parse
		}
	}

	if config.EnableBookingCancelledEmail {
		if bytes, err := templateContent(logger, config.BookingCancelledTemplateFile, defaultBookingCancelledTemplate); err != nil {
			return ValidFailWith(errors.New("fail to load booking_cancelled_template_file"), err)
		} else if parse, err := template.New("booking_cancelled").Parse(string(bytes)); err != nil {
			return ValidFailWith(errors.New("fail to parse booking_cancelled_template"), err)
		} else {
			config.BookingCancelledTemplate = parse
		}
	}

	return ValidPass()
}
