// Package config
package config

import (
	"errors"
	"time"

	"github.com/half-nothing/simple-booking/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled      bool                 `json:"enabled"`
	Host         string               `json:"host"`
	Port         int                  `json:"port"`
	EmailServer  *gomail.Dialer       `json:"-"`
	Username     string               `json:"username"`
	Password     string               `json:"password"`
	Sender       string               `json:"sender"`
	SendInterval string               `json:"send_interval"`
	SendDuration time.Duration        `json:"-"`
	Template     *EmailTemplateConfig `json:"template"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:      false,
		Host:         "smtp.example.com",
		Port:         465,
		Username:     "booking@example.com",
		Password:     "123456",
		Sender:       "booking@example.com",
		SendInterval: "1m",
		Template:     defaultEmailTemplateConfig(),
	}
}

func (config *EmailConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.SendInterval); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.email.send_interval"), err)
	} else {
		config.SendDuration = duration
	}

	if !config.Enabled {
		logger.Info("Email notifications disabled")
		return ValidPass()
	}

	if config.Sender == "" {
		config.Sender = config.Username
	}

	if result := config.Template.checkValid(logger); result.IsFail() {
		return result
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
