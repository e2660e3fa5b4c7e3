package cli

import (
	log "github.com/sirupsen/logrus"

	"github.com/sangkips/till-pos/internal/application/service"
	"github.com/sangkips/till-pos/internal/config"
	"github.com/sangkips/till-pos/internal/infrastructure/repository"
	"github.com/sangkips/till-pos/internal/pkg/auth"
	"github.com/sangkips/till-pos/pkg/printer"
)

// App wires configuration, repositories and services for the command
// surface.
type App struct {
	Cfg      *config.Config
	Logger   *log.Logger
	Auth     *service.AuthService
	Profiles *service.ProfileService
	Sales    *service.SaleService
	Receipts *service.ReceiptService
	Printer  *service.PrinterService
}

// NewApp loads configuration and constructs the service graph.
func NewApp() (*App, error) {
	cfg := config.Load()

	logger := log.New()
	if cfg.App.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	hasher := auth.NewSHA256Hasher()

	userRepo, err := repository.NewUserRepository(cfg.Storage.UsersFile, hasher, logger)
	if err != nil {
		return nil, err
	}
	productRepo := repository.NewProductRepository()
	receiptRepo, err := repository.NewReceiptRepository(cfg.Storage.ReceiptsDir, cfg.Store.Currency, logger)
	if err != nil {
		return nil, err
	}

	profileService, err := service.NewProfileService(userRepo, cfg.Storage.ProfileImagesDir, logger)
	if err != nil {
		return nil, err
	}

	thermalPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		logger.WithError(err).Warn("failed to initialize printer")
		thermalPrinter = printer.NewNullPrinter()
	}

	return &App{
		Cfg:      cfg,
		Logger:   logger,
		Auth:     service.NewAuthService(userRepo, hasher, cfg.Store.VATRate, logger),
		Profiles: profileService,
		Sales:    service.NewSaleService(productRepo, cfg.Store.VATRate),
		Receipts: service.NewReceiptService(receiptRepo, cfg.Store.Name, cfg.Store.Currency, logger),
		Printer:  service.NewPrinterService(thermalPrinter, receiptRepo, cfg.Printer.Type, cfg.Store.Currency, logger),
	}, nil
}
