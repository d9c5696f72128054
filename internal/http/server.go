// Package http exposes the budget tracker as a JSON API: auth session
// endpoints, transaction and category mutations, and the derived dashboard
// views. The presentation layer itself lives outside this service.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"budgetbook/internal/auth"
	"budgetbook/internal/cache"
	"budgetbook/internal/ledger"
	"budgetbook/internal/middleware/ratelimit"
	"budgetbook/internal/middleware/security"
	"budgetbook/internal/middleware/trace"
	"budgetbook/internal/reports"
)

type Server struct {
	http.Server

	ledger *ledger.Ledger
	auth   *auth.Service

	limiter   *ratelimit.Limiter
	extractor *security.Extractor

	cacheManager   *cache.Manager
	summaryCache   *cache.LRUCache[reports.Summary]
	analyticsCache *cache.LRUCache[analyticsPayload]

	shutdownOnce sync.Once
}

// Options tunes the report caches. Zero values fall back to defaults.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// NewServer wires routes, middleware, and the report caches. Mutation events
// from the ledger invalidate every cached view.
func NewServer(addr string, l *ledger.Ledger, authSvc *auth.Service, opts Options) *Server {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 128
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}

	mux := http.NewServeMux()

	s := &Server{
		ledger:         l,
		auth:           authSvc,
		limiter:        ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		extractor:      security.NewExtractor(),
		cacheManager:   cache.NewManager(),
		summaryCache:   cache.NewLRUCache[reports.Summary](opts.CacheSize, opts.CacheTTL),
		analyticsCache: cache.NewLRUCache[analyticsPayload](opts.CacheSize, opts.CacheTTL),
	}

	s.cacheManager.Register(s.summaryCache)
	s.cacheManager.Register(s.analyticsCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	// Any mutation can change every derived view, so drop them all.
	l.Subscribe(func(ledger.Event) {
		s.summaryCache.Clear()
		s.analyticsCache.Clear()
	})

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	mux.HandleFunc("GET /api/auth/me", s.handleMe)

	mux.HandleFunc("GET /api/state", s.requireAuth(s.handleState))

	mux.HandleFunc("GET /api/transactions", s.requireAuth(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", s.requireAuth(s.handleCreateTransaction))
	mux.HandleFunc("PUT /api/transactions/{id}", s.requireAuth(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.requireAuth(s.handleDeleteTransaction))

	mux.HandleFunc("PUT /api/categories/{id}", s.requireAuth(s.handleUpdateCategory))
	mux.HandleFunc("POST /api/reset", s.requireAuth(s.handleReset))

	mux.HandleFunc("GET /api/summary", s.requireAuth(s.handleSummary))
	mux.HandleFunc("GET /api/analytics", s.requireAuth(s.handleAnalytics))
	mux.HandleFunc("GET /api/budgets", s.requireAuth(s.handleBudgets))

	mux.HandleFunc("GET /api/editstate", s.requireAuth(s.handleGetEditState))
	mux.HandleFunc("POST /api/editstate", s.requireAuth(s.handleSetEditState))

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(s.extractor.ExtractClientIP)

	handler := tracer.Middleware(headers.Middleware(s.withMutationLimit(mux)))

	s.Server = http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// withMutationLimit rate-limits writes; reads pass through untouched.
func (s *Server) withMutationLimit(next http.Handler) http.Handler {
	limited := s.limiter.Middleware(s.extractor.ExtractClientIP, nil)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			limited.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// requireAuth rejects requests without a stored session.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok, err := s.auth.Current(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "session lookup failed")
			return
		}
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r)
	}
}

// Shutdown stops the server along with its cache and limiter goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
