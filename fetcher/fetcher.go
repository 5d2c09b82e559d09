package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/qyinm/staffdir/logging"
	"github.com/qyinm/staffdir/types"
)

const (
	DefaultPrimaryURL = "http://localhost:3000/employees"
	DefaultFallback   = "db/db.json"
	userAgent         = "staffdir/1.0 (+https://github.com/qyinm/staffdir)"
)

// Options configures a Resolver. Zero values fall back to the defaults.
type Options struct {
	PrimaryURL string
	Fallback   string
	Timeout    time.Duration
	CacheTTL   time.Duration
}

// Resolver implements types.EmployeeSource: a primary HTTP endpoint with a
// static fallback resource, and an in-memory cache of the last result.
type Resolver struct {
	client     *http.Client
	primaryURL string
	fallback   string
	ttl        time.Duration
	cache      map[string]cachedResult
	mu         sync.Mutex
}

type cachedResult struct {
	value     []types.Employee
	timestamp time.Time
}

// Compile-time interface check
var _ types.EmployeeSource = (*Resolver)(nil)

// New creates a new Resolver with configured HTTP client and empty cache.
func New(opts Options) *Resolver {
	if opts.PrimaryURL == "" {
		opts.PrimaryURL = DefaultPrimaryURL
	}
	if opts.Fallback == "" {
		opts.Fallback = DefaultFallback
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Resolver{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		primaryURL: opts.PrimaryURL,
		fallback:   opts.Fallback,
		ttl:        opts.CacheTTL,
		cache:      make(map[string]cachedResult),
	}
}

// GetEmployees resolves the record collection. The primary endpoint is tried
// first and any failure there is swallowed; only a fallback failure is
// returned to the caller.
func (r *Resolver) GetEmployees(ctx context.Context) ([]types.Employee, error) {
	if cached, ok := r.cached(r.primaryURL); ok {
		return cached, nil
	}

	employees, err := r.fetchPrimary(ctx)
	if err == nil {
		r.store(r.primaryURL, employees)
		return employees, nil
	}
	logging.Debug("primary source unavailable, using fallback", "url", r.primaryURL, "err", err)

	employees, err = r.fetchFallback(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	logging.Info("loaded employees from fallback", "source", r.fallback, "count", len(employees))
	r.store(r.primaryURL, employees)
	return employees, nil
}

// ClearCache clears the in-memory cache.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]cachedResult)
}

func (r *Resolver) cached(key string) ([]types.Employee, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cache[key]
	if !ok {
		return nil, false
	}
	if r.ttl > 0 && time.Since(c.timestamp) > r.ttl {
		delete(r.cache, key)
		return nil, false
	}
	return c.value, true
}

func (r *Resolver) store(key string, employees []types.Employee) {
	r.mu.Lock()
	r.cache[key] = cachedResult{value: employees, timestamp: time.Now()}
	r.mu.Unlock()
}

func (r *Resolver) fetchPrimary(ctx context.Context) ([]types.Employee, error) {
	body, err := r.get(ctx, r.primaryURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	employees, err := ParseEmployees(body)
	if err != nil {
		return nil, fmt.Errorf("parse primary: %w", err)
	}
	return employees, nil
}

func (r *Resolver) fetchFallback(ctx context.Context) ([]types.Employee, error) {
	var body io.ReadCloser
	if isRemote(r.fallback) {
		b, err := r.get(ctx, r.fallback)
		if err != nil {
			return nil, err
		}
		body = b
	} else {
		f, err := os.Open(r.fallback)
		if err != nil {
			return nil, fmt.Errorf("open fallback: %w", err)
		}
		body = f
	}
	defer body.Close()

	employees, err := ParseFallback(body)
	if errors.Is(err, ErrUnexpectedShape) {
		logging.Error("unexpected data format", "source", r.fallback)
		return []types.Employee{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse fallback: %w", err)
	}
	return employees, nil
}

func (r *Resolver) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

// StatusError reports a non-ok HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
