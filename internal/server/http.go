package server

import (
	"time"

	"skillscan/internal/config"
	skillscanErrors "skillscan/internal/errors"
	"skillscan/internal/question"
	"skillscan/internal/session"
)

// StartInterviewRequest represents the request body for the interview start endpoint
type StartInterviewRequest struct {
	Role       string `json:"role"`
	Difficulty string `json:"difficulty"`
	Company    string `json:"company,omitempty"`
}

// AnswerRequest represents the request body for the interview and HR answer endpoints
type AnswerRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

// EndSessionRequest represents the request body for the session end endpoints
type EndSessionRequest struct {
	SessionID string `json:"sessionId"`
}

// ScoreResumeRequest represents the request body for the resume score and gap endpoints
type ScoreResumeRequest struct {
	ResumeText string `json:"resumeText"`
	Role       string `json:"role"`
}

// ReportRequest represents the request body for the readiness report endpoint
type ReportRequest struct {
	ResumeScore     int    `json:"resumeScore"`
	TechnicalScore  int    `json:"technicalScore"`
	BehavioralScore int    `json:"behavioralScore"`
	Role            string `json:"role"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Interview collaborators
	Bank     *question.Bank
	Sessions session.Store

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *skillscanErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, bank *question.Bank, sessions session.Store, logger *skillscanErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		Bank:           bank,
		Sessions:       sessions,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
