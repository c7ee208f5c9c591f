// Package sheets downloads the dashboard spreadsheet (an XLSX export) and
// turns its tabs into a models.Snapshot.
package sheets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lure/sales-dashboard/internal/models"
	"github.com/lure/sales-dashboard/internal/utils"
)

var (
	ErrNoSheetURL = errors.New("sheet url is required")
	ErrUpstream   = errors.New("sheet upstream failure")
)

type Source interface {
	Fetch(ctx context.Context, url string) (models.Snapshot, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	DefaultAttempts = 3
	DefaultMaxBytes = 20 << 20
)

type HTTPSource struct {
	Client   HTTPClient
	Attempts int
	MaxBytes int64
	Logger   zerolog.Logger
	Now      func() time.Time
}

func NewHTTPSource(timeout time.Duration, maxBytes int64, logger zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		Client:   &http.Client{Timeout: timeout},
		Attempts: DefaultAttempts,
		MaxBytes: maxBytes,
		Logger:   logger,
		Now:      time.Now,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, url string) (models.Snapshot, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return models.Snapshot{}, ErrNoSheetURL
	}

	start := time.Now()
	body, err := s.download(ctx, url)
	if err != nil {
		return models.Snapshot{}, err
	}

	snap, warnings, err := ParseWorkbook(bytes.NewReader(body), s.now())
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	for _, w := range warnings {
		s.Logger.Warn().Str("url", redact(url)).Msg(w)
	}
	s.Logger.Info().
		Str("url", redact(url)).
		Int("bytes", len(body)).
		Int("leads", len(snap.Leads)).
		Int("campaigns", len(snap.Campaigns)).
		Int("salespeople", len(snap.Salespeople)).
		Int("parameters", len(snap.Parameters)).
		Dur("latency", time.Since(start)).
		Msg("sheet fetched")
	return snap, nil
}

func (s *HTTPSource) download(ctx context.Context, url string) ([]byte, error) {
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		body, retry, err := s.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry || i == attempts-1 {
			break
		}
		wait := utils.Backoff(i)
		s.Logger.Warn().Err(err).Int("attempt", i+1).Dur("backoff", wait).Msg("sheet download failed, retrying")
		if err := utils.Sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
	}
	return nil, fmt.Errorf("%w: download: %w", ErrUpstream, lastErr)
}

// get returns whether a failure is worth retrying: transport errors, 429 and 5xx.
func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := s.client().Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("unexpected status %s", resp.Status)
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, true, err
	}
	if int64(len(body)) > limit {
		return nil, false, fmt.Errorf("sheet exceeds %d bytes", limit)
	}
	return body, false, nil
}

func (s *HTTPSource) client() HTTPClient {
	if s.Client == nil {
		return http.DefaultClient
	}
	return s.Client
}

func (s *HTTPSource) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// redact drops the query string, which often carries export tokens.
func redact(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
