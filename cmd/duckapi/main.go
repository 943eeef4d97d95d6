package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/duckapi/internal/config"
	"github.com/saltyorg/duckapi/internal/database"
	"github.com/saltyorg/duckapi/internal/logging"
	"github.com/saltyorg/duckapi/internal/maintenance"
	"github.com/saltyorg/duckapi/internal/web"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	defaultPort   = 3000
	defaultDBPath = "./duckapi.duckdb"
)

// CLI flags
var (
	port        int
	bind        string
	allowSubnet string
	dbPath      string
	engineName  string
	verbosity   int
	logFile     string
	logToFile   bool

	checkpointSchedule string
	checkpointTimeout  time.Duration

	// Timeout flags (advanced)
	readTimeout     time.Duration
	idleTimeout     time.Duration
	requestTimeout  time.Duration
	shutdownTimeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "duckapi",
		Short: "duckapi - CRUD REST API over an embedded analytical database",
		Long:  `duckapi serves users, products and price analytics as JSON over HTTP, backed by DuckDB, SQLite or memory.`,
		RunE:  run,
	}

	// Shared flags
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database file path (or set DB_PATH env var)")
	rootCmd.PersistentFlags().StringVarP(&engineName, "engine", "e", "", "Storage engine: duckdb, sqlite or memory (or set DB_ENGINE env var)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file, rotated (or set DUCKAPI_LOG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "Write logs next to the database file")

	// Serve flags
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (or set PORT env var, default 3000)")
	rootCmd.Flags().StringVarP(&bind, "bind", "b", "", "IP address to bind to (e.g., 127.0.0.1, 0.0.0.0)")
	rootCmd.Flags().StringVarP(&allowSubnet, "allow-subnet", "a", "", "CIDR subnet allowed to connect (e.g., 192.168.1.0/24)")
	rootCmd.Flags().StringVar(&checkpointSchedule, "checkpoint-schedule", "", "Cron schedule for periodic checkpoints (e.g., \"*/15 * * * *\")")
	rootCmd.Flags().DurationVar(&checkpointTimeout, "checkpoint-timeout", 2*time.Minute, "Timeout for a single checkpoint")

	// Advanced timeout flags
	defaults := config.DefaultTimeoutConfig()
	rootCmd.Flags().DurationVar(&readTimeout, "read-timeout", defaults.Read, "Maximum time to read a request")
	rootCmd.Flags().DurationVar(&idleTimeout, "idle-timeout", defaults.Idle, "Keep-alive idle timeout")
	rootCmd.Flags().DurationVar(&requestTimeout, "request-timeout", defaults.Request, "Maximum time for a single request (0 disables)")
	rootCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", defaults.Shutdown, "Grace period for in-flight requests on shutdown")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create tables, seed sample data and print analytics",
		RunE:  runInit,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "checkpoint",
		Short: "Merge the write-ahead log into the database file and exit",
		RunE:  runCheckpoint,
	})

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("duckapi %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves env fallbacks, configures logging and opens the store
func setup(ctx context.Context) (database.Store, *config.Loader, error) {
	// Check for DB_PATH env var if using default
	if dbPath == defaultDBPath {
		if envDB := os.Getenv("DB_PATH"); envDB != "" {
			dbPath = envDB
		}
	}
	if engineName == "" {
		engineName = os.Getenv("DB_ENGINE")
	}
	if engineName == "" {
		engineName = string(database.EngineDuckDB)
	}

	loader := config.NewLoader(config.EnvSettings{})
	path := logFile
	if path == "" {
		path = loader.String("log.file", "")
	}
	if path == "" && logToFile {
		path = logging.FilePathForDB(dbPath)
	}
	logging.Apply(loader.String("log.level", logging.LevelForVerbosity(verbosity)), loader, path)

	engine, err := database.ParseEngine(engineName)
	if err != nil {
		return nil, nil, err
	}

	store, err := database.Open(engine, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s database: %w", engine, err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return store, loader, nil
}

func run(cmd *cobra.Command, args []string) error {
	// Check for PORT env var if flag not set
	if port == 0 {
		if envPort := os.Getenv("PORT"); envPort != "" {
			if _, err := fmt.Sscanf(envPort, "%d", &port); err != nil {
				return fmt.Errorf("invalid PORT environment variable %q: %w", envPort, err)
			}
		} else {
			port = defaultPort
		}
	}

	// Validate bind address if provided
	if bind != "" {
		if ip := net.ParseIP(bind); ip == nil {
			return fmt.Errorf("invalid bind address: %s", bind)
		}
	}

	// Validate and parse allow-subnet if provided
	var allowedNet *net.IPNet
	if allowSubnet != "" {
		_, parsedNet, err := net.ParseCIDR(allowSubnet)
		if err != nil {
			return fmt.Errorf("invalid allow-subnet CIDR: %s", allowSubnet)
		}
		allowedNet = parsedNet
	}

	store, loader, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	// Configure global timeouts
	config.SetGlobalTimeouts(&config.TimeoutConfig{
		Read:     readTimeout,
		Idle:     idleTimeout,
		Request:  requestTimeout,
		Shutdown: shutdownTimeout,
	})

	log.Info().
		Str("version", version).
		Int("port", port).
		Str("bind", bind).
		Str("allow_subnet", allowSubnet).
		Str("engine", string(store.Engine())).
		Str("database", dbPath).
		Msg("Starting duckapi")

	server := web.NewServer(store, port, bind, allowedNet)
	server.SetVersionInfo(version, commit, date)

	scheduler := maintenance.NewScheduler(store, checkpointTimeout)
	schedule := checkpointSchedule
	if schedule == "" {
		schedule = loader.String("checkpoint.schedule", "")
	}
	if started, err := scheduler.Start(schedule); err != nil {
		log.Warn().Err(err).Str("schedule", schedule).Msg("Invalid checkpoint schedule; periodic checkpoints disabled")
	} else if !started {
		log.Debug().Msg("Checkpoint scheduler not started (no schedule configured)")
	}
	server.SetScheduler(scheduler)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Server error")
		scheduler.Stop()
		return err
	}

	scheduler.Stop()

	checkpointCtx, checkpointCancel := context.WithTimeout(context.Background(), checkpointTimeout)
	defer checkpointCancel()
	if err := scheduler.RunNow(checkpointCtx); err != nil {
		log.Error().Err(err).Msg("Final checkpoint failed")
	}

	log.Info().Msg("duckapi stopped")
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, _, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	log.Info().Str("engine", string(store.Engine())).Str("database", dbPath).Msg("Tables ready")

	seeded, err := store.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}
	if seeded {
		log.Info().Msg("Sample data inserted")
	} else {
		log.Info().Msg("Users already present; skipping sample data")
	}

	if optimizer, ok := store.(interface{ Optimize(context.Context) error }); ok {
		if err := optimizer.Optimize(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to refresh table statistics")
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute analytics: %w", err)
	}
	printSummary(os.Stdout, stats)

	if err := store.Checkpoint(ctx); err != nil {
		return fmt.Errorf("failed to checkpoint database: %w", err)
	}

	log.Info().Msg("Initialization complete")
	return nil
}

func runCheckpoint(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, _, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	start := time.Now()
	if err := store.Checkpoint(ctx); err != nil {
		return fmt.Errorf("failed to checkpoint database: %w", err)
	}

	log.Info().Str("database", dbPath).Dur("duration", time.Since(start)).Msg("Checkpoint complete")
	return nil
}
