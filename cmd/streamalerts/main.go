package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/app"
	clientService "github.com/dkazarov/dk_go_stream_alerts/internal/client/v1"
	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
	donationService "github.com/dkazarov/dk_go_stream_alerts/internal/service/donation/v1"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/mapper"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	secretaryService "github.com/dkazarov/dk_go_stream_alerts/internal/service/secretary/v1"
	servicelinkService "github.com/dkazarov/dk_go_stream_alerts/internal/service/servicelink/v1"
	walletlinkService "github.com/dkazarov/dk_go_stream_alerts/internal/service/walletlink/v1"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage/infile"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage/inpsql"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// add a waiting group
	wg := &sync.WaitGroup{}
	// set number of wg members to 1 (this will be the storage closer goroutine)
	wg.Add(1)
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	debug := flag.Bool("debug", false, "Enable debug logging")
	exportServices := flag.String("export-services", "", "Export service links as CSV to a file path")
	exportDonations := flag.String("export-donations", "", "Export donations as CSV to a file path")
	cfg.ParseFlags()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	sec := secretaryService.NewSecretaryService(cfg.SecretConfig)
	// initialize (or retrieve if present) storage, switch between "infile" and "inpsql" modules
	var errInit error
	var storageInit storage.AlertStorage
	switch cfg.StorageConfig.DatabaseDSN {
	case "":
		storageInit, errInit = infile.InitStorage(ctx, wg, cfg.StorageConfig, sec, logger)
	default:
		storageInit, errInit = inpsql.InitStorage(ctx, wg, cfg.StorageConfig, logger)
	}
	if errInit != nil {
		logger.Fatal("storage initialization failed", zap.Error(errInit))
	}

	apiClient, err := clientService.InitClient(cfg.APIConfig, logger.With(zap.String("module", "client")))
	if err != nil {
		logger.Fatal("client initialization failed", zap.Error(err))
	}
	normalizer, err := mapper.InitNormalizer(cfg.APIConfig)
	if err != nil {
		logger.Fatal("normalizer initialization failed", zap.Error(err))
	}
	confirmer := &app.StdinConfirmer{In: os.Stdin, Out: os.Stdout}
	services, err := servicelinkService.InitManager(apiClient, storageInit, normalizer, confirmer, logger.With(zap.String("module", "servicelink")))
	if err != nil {
		logger.Fatal("service link manager initialization failed", zap.Error(err))
	}
	donations, err := donationService.InitManager(apiClient, storageInit, normalizer, confirmer, logger.With(zap.String("module", "donation")))
	if err != nil {
		logger.Fatal("donation manager initialization failed", zap.Error(err))
	}
	walletLinks, err := walletlinkService.InitManager(apiClient, storageInit, logger.With(zap.String("module", "walletlink")))
	if err != nil {
		logger.Fatal("wallet link manager initialization failed", zap.Error(err))
	}

	// a user without a wallets file gets an idle session
	wallets, err := app.ReadWallets(cfg.APIConfig.WalletsFile)
	if err != nil {
		logger.Warn("wallets file loading failed", zap.Error(err), zap.String("path", cfg.APIConfig.WalletsFile))
		wallets = []modelalert.Wallet{}
	}
	session := app.InitSession(wallets, services, donations, walletLinks, &app.LogNotifier{Log: logger}, logger)
	session.Bootstrap(ctx)

	if *exportServices != "" {
		if err := exportToFile(ctx, *exportServices, services.ExportCSV); err != nil {
			logger.Error("service link export failed", zap.Error(err))
		}
	}
	if *exportDonations != "" {
		if err := exportToFile(ctx, *exportDonations, donations.ExportCSV); err != nil {
			logger.Error("donation export failed", zap.Error(err))
		}
	}

	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("session started", zap.Int("wallets", len(wallets)))
	<-done
	logger.Info("session shutdown attempted")
	cancel()
	// wait for goroutine in InitStorage to finish before exiting
	wg.Wait()
	logger.Info("session shutdown succeeded")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func exportToFile(ctx context.Context, path string, export func(ctx context.Context, w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return export(ctx, file)
}
