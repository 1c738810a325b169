package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/subosito/gotenv"

	"github.com/daccred/stellarops.attest.so/config"
	"github.com/daccred/stellarops.attest.so/controllers"
	"github.com/daccred/stellarops.attest.so/db"
	"github.com/daccred/stellarops.attest.so/handlers"
	"github.com/daccred/stellarops.attest.so/server"
)

func main() {
	environment := flag.String("e", "development", "")
	flag.Usage = func() {
		fmt.Println("Usage: server -e {mode}")
		os.Exit(1)
	}
	flag.Parse()

	gotenv.Load()
	config.Init(*environment)
	cfg := config.GetConfig()

	if level, err := logrus.ParseLevel(cfg.GetString("log.level")); err == nil {
		logrus.SetLevel(level)
	}
	logger := logrus.WithField("service", "stellarops")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = cfg.GetString("database.url")
	}
	dbConn, err := db.Connect(databaseURL)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	archiver := handlers.NewArchiver(dbConn, logger)
	controller := controllers.NewOperationsController(dbConn, archiver, logger)
	router := server.NewRouter(controller, cfg.GetStringSlice("server.cors_origins"))

	srv := &server.Server{DefaultPort: cfg.GetString("server.port")}
	if err := srv.Run(router); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
