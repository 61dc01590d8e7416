package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sulaski/blogden/internal/blogservice"
	"github.com/sulaski/blogden/internal/categoryservice"
	"github.com/sulaski/blogden/internal/common"
	"github.com/sulaski/blogden/internal/userservice"
)

type application struct {
	config          *Config
	logger          *slog.Logger
	userService     *userservice.UserService
	categoryService *categoryservice.CategoryService
	blogService     *blogservice.BlogService
	broker          *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.MongoURI, cfg.MongoDB, 10, 10*time.Second)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// The event broker is optional; without it the services simply skip
	// publishing lifecycle events.
	var broker *common.MessageBroker
	var producer common.MessageProducer
	if cfg.MQHost != "" {
		URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
		broker, err = common.NewMessageBroker(URI)
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		if err := common.SetupEntityExchange(broker); err != nil {
			logger.Error("failed to setup the entity exchange", slog.String("error", err.Error()))
			os.Exit(1)
		}

		producer = broker
	}

	app := &application{
		config:          cfg,
		logger:          logger,
		userService:     userservice.NewUserService(db, producer),
		categoryService: categoryservice.NewCategoryService(db),
		blogService:     blogservice.NewBlogService(db, producer),
		broker:          broker,
	}

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
