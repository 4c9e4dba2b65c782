package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"flight-booking-system/commands"
	"flight-booking-system/config"
	"flight-booking-system/console"
	"flight-booking-system/database"
	"flight-booking-system/handlers"
	"flight-booking-system/metrics"
	"flight-booking-system/model"
	"flight-booking-system/router"
)

func main() {
	logger := log.New(os.Stderr, "fbs ", log.LstdFlags)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal(err)
	}
	metrics.Register()

	stores := database.NewStores(cfg.DataDir, time.Now, logger)
	fbs, err := database.Load(stores.Managers())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	dispatcher := commands.NewDispatcher(commands.Env{
		System: fbs,
		Stores: stores,
		Now:    time.Now,
		Logger: logger,
	})

	users, err := userStore(cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}
	dashboard := router.NewDashboard(cfg.DashboardAddr, handlers.New(dispatcher, users, cfg.SignKey), cfg.SignKey, logger)
	dispatcher.SetGUI(dashboard)

	if err := console.Run(os.Stdin, os.Stdout, dispatcher); err != nil {
		logger.Printf("console: %v", err)
	}

	if err := dispatcher.Store(); err != nil {
		fmt.Println(err)
	}
	os.Exit(0)
}

// userStore prefers the MongoDB users collection when a connection string is set.
func userStore(cfg config.Config, logger *log.Logger) (database.UserStore, error) {
	if cfg.MongoConnString == "" {
		return database.NewStaticUsers(model.UserData{
			Login:          cfg.AdminLogin,
			HashedPassword: cfg.AdminPasswordHash,
			Role:           model.RoleAdmin,
		}), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	collection, err := database.DBInit(ctx, cfg.MongoConnString, cfg.MongoDatabase, database.USERS_COLLECTION)
	if err != nil {
		return nil, err
	}
	logger.Printf("dashboard users are read from %s.%s", cfg.MongoDatabase, database.USERS_COLLECTION)
	return database.NewMongoUsers(collection), nil
}
