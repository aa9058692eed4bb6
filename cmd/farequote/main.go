package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/voyageware/farequote/internal/config"
	"github.com/voyageware/farequote/internal/quote"
	"github.com/voyageware/farequote/internal/rules"
	"github.com/voyageware/farequote/internal/server"
	"github.com/voyageware/farequote/pkg/constants"
	"github.com/voyageware/farequote/pkg/output"
	"github.com/voyageware/farequote/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is stamped at build time.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	rulesLocation := flag.String("rules", "", "path to carrier rules file (overrides carrierRulesFile in config)")
	requestLocation := flag.String("request", "", "path to quote request file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	listenAddress := flag.String("listen", "", "serve the quote API on this address instead of evaluating a request file")
	flag.Parse()

	// Load the config file to get logging configuration. A missing default
	// config file is not an error; the defaults cover it.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if *configLocation == constants.DefaultConfigFile {
			if _, statErr := os.Stat(*configLocation); os.IsNotExist(statErr) {
				conf = &config.Configuration{}
			}
		}
		if conf == nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Resolve the carrier rule table: CLI flag, then config file reference,
	// then rules inlined in the config itself.
	rulesPath := *rulesLocation
	if rulesPath == "" {
		rulesPath = conf.CarrierRulesFile
	}

	carriers := conf.Carriers
	if rulesPath != "" {
		carriers, err = config.LoadCarrierRules(rulesPath)
		if err != nil {
			logger.Fatal("failed to load carrier rules",
				zap.String("op", "main"),
				zap.String("path", rulesPath),
				zap.Error(err),
			)
		}
	}
	if len(carriers) == 0 {
		logger.Warn("no carrier rules configured; every carrier falls back to default policies",
			zap.String("op", "main"),
		)
	}

	// Validate carrier rules and display any warnings
	for _, warning := range validation.ValidateCarrierRules(carriers) {
		logger.Warn("Carrier rules warning: "+warning,
			zap.String("op", "main"),
		)
	}

	store := rules.NewStore(logger, carriers)
	if rulesPath != "" {
		store.SetRulesPath(rulesPath)
	}

	if *listenAddress != "" || (*requestLocation == "" && conf.Server.Address != "") {
		serveAPI(logger, conf, store, *listenAddress, rulesPath)
		return
	}

	if *requestLocation == "" {
		logger.Fatal("no request file given; pass -request or run with -listen",
			zap.String("op", "main"),
		)
	}

	request, err := quote.LoadRequest(*requestLocation)
	if err != nil {
		logger.Fatal("failed to load quote request",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Run the evaluation to get the quote.
	engine := quote.NewEngine(logger)
	result := engine.Evaluate(store.Snapshot(), request.Itinerary, request.Criteria)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		rendered, err := output.JSONString(result)
		if err != nil {
			logger.Fatal("failed to render quote",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Println(rendered)
	}
}

// serveAPI runs the HTTP quote API until the process is interrupted.
// SIGHUP reloads the carrier rules file without a restart.
func serveAPI(logger *zap.Logger, conf *config.Configuration, store *rules.Store, listenOverride, rulesPath string) {
	serverConfig, err := server.FromServerConfig(conf.Server, conf.Logging)
	if err != nil {
		logger.Fatal("invalid server configuration",
			zap.String("op", "main.serveAPI"),
			zap.Error(err),
		)
	}
	if listenOverride != "" {
		serverConfig.Address = listenOverride
	}

	handler := server.NewHandler(logger, store, serverConfig.RequestSizeBytes(), version)

	if rulesPath != "" {
		reload := make(chan os.Signal, 1)
		signal.Notify(reload, syscall.SIGHUP)
		go func() {
			for range reload {
				if err := store.Reload(); err != nil {
					logger.Warn("carrier rules reload failed; keeping previous snapshot",
						zap.String("op", "main.serveAPI"),
						zap.Error(err),
					)
				}
			}
		}()
	}

	logger.Info("serving quote API",
		zap.String("op", "main.serveAPI"),
		zap.String("address", serverConfig.Address),
		zap.String("version", version),
	)
	if err := http.ListenAndServe(serverConfig.Address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main.serveAPI"),
			zap.Error(err),
		)
	}
}
