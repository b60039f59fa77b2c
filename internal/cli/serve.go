package cli

import (
	"fmt"

	"skillscan/internal/config"
	"skillscan/internal/question"
	"skillscan/internal/server"
	"skillscan/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for mock interviews and resume scoring",
	Long: `Start an HTTP server that provides REST API endpoints for mock
interview sessions, resume scoring, and readiness reports.

Available endpoints:
- POST /interview/start: Start a technical interview session
- POST /interview/answer: Submit an answer and receive the next question
- POST /interview/end: End a session and receive a summary
- POST /hr/start, /hr/answer, /hr/end: Behavioral interview sessions
- POST /resume/score: Score a resume against a role
- POST /resume/gaps: Skill gap analysis for a resume
- POST /report: Build an interview readiness report
- GET /companies: List supported company interview styles
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

TLS Configuration:
- Use --tls-mode to set TLS mode: disabled, server, mutual
- Use --cert-file and --key-file for TLS certificates
- Use --ca-file for mutual TLS client certificate verification`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("tls-mode", "", "TLS mode: disabled, server, mutual (overrides config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")
	serveCmd.Flags().String("ca-file", "", "CA certificate file for client cert verification (PEM, overrides config)")
	serveCmd.Flags().String("session-backend", "", "Session store backend: memory, redis (overrides config)")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
	bindFlag("server.tls.mode", "tls-mode")
	bindFlag("server.tls.certfile", "cert-file")
	bindFlag("server.tls.keyfile", "key-file")
	bindFlag("server.tls.cafile", "ca-file")
	bindFlag("session.backend", "session-backend")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Vault secrets may carry API keys, the Redis password, and TLS
	// certificate content, so they must land before validation.
	if err := config.ApplyVaultSecrets(cfg, logger); err != nil {
		return fmt.Errorf("failed to apply vault secrets: %w", err)
	}

	// Validate TLS configuration after applying overrides
	tempConfig := &config.Config{Server: cfg.Server}
	if err := tempConfig.ValidateTLSConfig(); err != nil {
		return fmt.Errorf("invalid TLS configuration: %w", err)
	}

	bank := question.NewBank(cfg.Interview.RandomSeed)
	if cfg.Interview.Overlay.Enabled {
		overlay, err := question.LoadOverlay(cfg.Interview.Overlay.Path)
		if err != nil {
			return fmt.Errorf("failed to load question overlay: %w", err)
		}
		bank.ApplyOverlay(overlay)

		watcher := question.NewOverlayWatcher(cfg.Interview.Overlay.Path, bank, cfg.Interview.Overlay.DebounceDelay, logger)
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start overlay watcher: %w", err)
		}
		defer func() {
			if err := watcher.Stop(); err != nil {
				logger.Warn("Failed to stop overlay watcher", "error", err)
			}
		}()
	}

	store, err := buildSessionStore(cmd, cfg)
	if err != nil {
		return err
	}

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		TLSConfig:      cfg.Server.TLS,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.Server.MaxBodySize,
		RateLimit:      &cfg.Server.RateLimit,
	}
	return server.NewServer(cfg, serverCfg, bank, store, logger).Start()
}

func buildSessionStore(cmd *cobra.Command, cfg *config.Config) (session.Store, error) {
	logger := getLoggerFromContext(cmd.Context())
	switch cfg.Session.Backend {
	case "redis":
		redisCfg := session.RedisConfig{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
			TTL:      cfg.Session.TTL,
			Breaker: session.BreakerConfig{
				Enabled:          cfg.Session.Redis.CircuitBreaker.Enabled,
				MaxRequests:      cfg.Session.Redis.CircuitBreaker.MaxRequests,
				Interval:         cfg.Session.Redis.CircuitBreaker.Interval,
				Timeout:          cfg.Session.Redis.CircuitBreaker.Timeout,
				MinRequests:      cfg.Session.Redis.CircuitBreaker.MinRequests,
				FailureThreshold: cfg.Session.Redis.CircuitBreaker.FailureThreshold,
			},
		}
		store, err := session.NewRedisStore(cmd.Context(), redisCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect session store: %w", err)
		}
		logger.Info("Using Redis session store", "addr", redisCfg.Addr, "db", redisCfg.DB)
		return store, nil
	default:
		logger.Info("Using in-memory session store",
			"ttl", cfg.Session.TTL.String(),
			"cleanup_interval", cfg.Session.CleanupInterval.String())
		return session.NewMemoryStore(cfg.Session.TTL, cfg.Session.CleanupInterval), nil
	}
}
