package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"spendtrack/internal/assistant"
	applog "spendtrack/internal/log"
	"spendtrack/internal/report"
	"spendtrack/internal/repository"
)

// Deps bundles the collaborators the server routes requests to.
type Deps struct {
	Expenses   *repository.ExpenseRepository
	Categories *repository.CategoryRegistry
	Profile    *repository.ProfileRepository
	Assistant  *assistant.Assistant
	Notifier   *assistant.Notifier
	Exporter   *report.Exporter

	// ReplyDelay paces chat replies. Zero means no delay.
	ReplyDelay time.Duration
}

type Server struct {
	http.Server

	expenses   *repository.ExpenseRepository
	categories *repository.CategoryRegistry
	profile    *repository.ProfileRepository
	chat       *assistant.Assistant
	notifier   *assistant.Notifier
	exporter   *report.Exporter
	replyDelay time.Duration

	rateLimiter  *rateLimiter
	logger       *applog.Logger
	shutdownOnce sync.Once
}

// Simple in-memory rate limiter
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

// startCleanup runs periodic cleanup to remove stale client entries
func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes
func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// stop gracefully shuts down the rate limiter cleanup goroutine
func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		if rl.stopCleanup != nil {
			close(rl.stopCleanup)
		}
	})
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{
			lastRequest: now,
			requests:    1,
		}
		return true
	}

	// Reset counter if more than 1 minute has passed
	if now.Sub(client.lastRequest) > time.Minute {
		client.requests = 1
		client.lastRequest = now
		return true
	}

	// Allow up to 60 requests per minute
	client.requests++
	client.lastRequest = now

	return client.requests <= 60
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, deps Deps, logger *applog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           applog.Requests(logger)(mux),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		expenses:    deps.Expenses,
		categories:  deps.Categories,
		profile:     deps.Profile,
		chat:        deps.Assistant,
		notifier:    deps.Notifier,
		exporter:    deps.Exporter,
		replyDelay:  deps.ReplyDelay,
		rateLimiter: newRateLimiter(),
		logger:      logger.WithComponent(applog.ComponentHTTP),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/api/expenses", s.withSecurityHeaders(s.handleExpenses))
	mux.HandleFunc("/api/expenses/", s.withSecurityHeaders(s.handleExpenseByID))
	mux.HandleFunc("/api/categories", s.withSecurityHeaders(s.handleCategories))
	mux.HandleFunc("/api/profile", s.withSecurityHeaders(s.handleProfile))
	mux.HandleFunc("/api/summary", s.withSecurityHeaders(s.handleSummary))
	mux.HandleFunc("/api/chat", s.withSecurityHeaders(s.handleChat))
	mux.HandleFunc("/api/chat/open", s.withSecurityHeaders(s.handleChatOpen))
	mux.HandleFunc("/api/report", s.withSecurityHeaders(s.handleReport))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withSecurityHeaders adds security headers and rate limiting to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Rate limit mutating requests only
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP(r)) {
			s.logger.Warn("rate limit exceeded",
				applog.FieldClientIP, clientIP(r),
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next(w, r)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
