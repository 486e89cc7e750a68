// Package wire provides dependency injection for the TaskMeister
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"go.uber.org/zap"

	"github.com/example/taskmeister/internal/adapters/mail"
	"github.com/example/taskmeister/internal/adapters/sqlite"
	"github.com/example/taskmeister/internal/app"
	"github.com/example/taskmeister/internal/config"
	"github.com/example/taskmeister/internal/db"
	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/ports/secondary"
)

var (
	cfg               *config.Config
	logger            *zap.Logger
	workerRepo        secondary.WorkerRepository
	houseRepo         secondary.HouseRepository
	assignRepo        secondary.AssignmentRepository
	workerService     primary.WorkerService
	houseService      primary.HouseService
	assignmentService primary.AssignmentService
	historyService    primary.HistoryService
	once              sync.Once
)

// Config returns the loaded configuration (defaults when no file exists).
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the singleton logger instance.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// WorkerService returns the singleton WorkerService instance.
func WorkerService() primary.WorkerService {
	once.Do(initServices)
	return workerService
}

// HouseService returns the singleton HouseService instance.
func HouseService() primary.HouseService {
	once.Do(initServices)
	return houseService
}

// AssignmentService returns the singleton AssignmentService instance. It
// notifies over SMTP when the configuration allows it and logs instead of
// sending otherwise.
func AssignmentService() primary.AssignmentService {
	once.Do(initServices)
	return assignmentService
}

// AssignmentServiceDryRun returns an AssignmentService that never sends
// mail. Sends are confirmed locally, so commits still mark as delivered.
func AssignmentServiceDryRun() primary.AssignmentService {
	once.Do(initServices)
	return app.NewAssignmentService(workerRepo, houseRepo, assignRepo, mail.NewNopNotifier(logger), logger)
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir, err := config.DefaultDir()
	if err != nil {
		log.Fatalf("failed to locate config directory: %v", err)
	}

	cfg, err = config.Load(dir)
	if err != nil {
		cfg = config.Default()
	}

	logger, err = zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to locate database: %v", err)
		}
	}

	database, err := db.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Init(database); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	workerRepo = sqlite.NewWorkerRepository(database)
	houseRepo = sqlite.NewHouseRepository(database)
	assignRepo = sqlite.NewAssignmentRepository(database)

	var notifier secondary.Notifier
	if cfg.SMTPConfigured() {
		notifier = mail.NewSMTPNotifier(cfg, logger)
	} else {
		notifier = mail.NewNopNotifier(logger)
	}

	// Services (primary ports implementation)
	workerService = app.NewWorkerService(workerRepo)
	houseService = app.NewHouseService(houseRepo)
	assignmentService = app.NewAssignmentService(workerRepo, houseRepo, assignRepo, notifier, logger)
	historyService = app.NewHistoryService(assignRepo)
}
