package main

import (
	"flag"
	"fmt"

	"github.com/half-nothing/simple-booking/internal/base"
	"github.com/half-nothing/simple-booking/internal/database"
	"github.com/half-nothing/simple-booking/internal/http_server"
	"github.com/half-nothing/simple-booking/internal/interfaces"
	"github.com/half-nothing/simple-booking/internal/interfaces/global"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.Info("Application initializing...")

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	if *global.SeedDatabase {
		if err := database.SeedDatabase(logger, databaseOperation); err != nil {
			logger.FatalF("Error occurred while seeding database, details: %v", err)
		}
		return
	}

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation)

	http_server.StartHttpServer(applicationContent)
}
