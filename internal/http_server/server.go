// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-booking/internal/http_server/controller"
	mid "github.com/half-nothing/simple-booking/internal/http_server/middleware"
	impl "github.com/half-nothing/simple-booking/internal/http_server/service"
	. "github.com/half-nothing/simple-booking/internal/interfaces"
	"github.com/half-nothing/simple-booking/internal/interfaces/service"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	slogecho "github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 15", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 15
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	jwtConfig := echojwt.Config{
		SigningKey:    []byte(httpConfig.JWT.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	}

	jwtMiddleware := echojwt.WithConfig(jwtConfig)

	emailService := impl.NewEmailService(logger, httpConfig.Email)
	impl.InitValidator(httpConfig.Limits)

	airportOperation := applicationContent.Operations().AirportOperation()
	aircraftOperation := applicationContent.Operations().AircraftOperation()
	flightOperation := applicationContent.Operations().FlightOperation()
	bookingOperation := applicationContent.Operations().BookingOperation()
	userOperation := applicationContent.Operations().UserOperation()

	userService := impl.NewUserService(logger, httpConfig, userOperation)
	flightService := impl.NewFlightService(logger, airportOperation, aircraftOperation, flightOperation)
	bookingService := impl.NewBookingService(logger, bookingOperation, userOperation, emailService)
	airportService := impl.NewAirportService(logger, airportOperation)

	userController := controller.NewUserController(logger, userService)
	flightController := controller.NewFlightController(logger, flightService)
	bookingController := controller.NewBookingController(logger, bookingService)
	airportController := controller.NewAirportController(logger, airportService)

	apiGroup := e.Group("/api/v1")

	apiGroup.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	userGroup := apiGroup.Group("/users")
	userGroup.POST("/register", userController.UserRegister)
	userGroup.POST("/token", userController.UserLogin)
	userGroup.GET("/token", userController.GetToken, jwtMiddleware)
	userGroup.GET("/me", userController.GetCurrentUserProfile, jwtMiddleware)

	flightGroup := apiGroup.Group("/flights")
	flightGroup.GET("", flightController.SearchFlights)
	flightGroup.GET("/:id", flightController.GetFlight)
	flightGroup.POST("", flightController.CreateFlight, jwtMiddleware)
	flightGroup.PUT("/:id", flightController.UpdateFlight, jwtMiddleware)

	bookingGroup := apiGroup.Group("/bookings")
	bookingGroup.POST("", bookingController.CreateBooking, jwtMiddleware)
	bookingGroup.GET("/me", bookingController.GetMyBookings, jwtMiddleware)
	bookingGroup.GET("/pnr/:pnr/:last_name", bookingController.GetBookingByPnrAndName)
	bookingGroup.GET("/:pnr", bookingController.GetBooking, jwtMiddleware)
	bookingGroup.PUT("/:pnr/cancel", bookingController.CancelBooking, jwtMiddleware)

	apiGroup.PUT("/passengers/:id", bookingController.UpdatePassenger, jwtMiddleware)

	apiGroup.GET("/airports", airportController.GetAirports, jwtMiddleware)

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
