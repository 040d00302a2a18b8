package pricing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/wvermeer/huisboek/internal/config"
)

// Source defines the contract for retrieving one year's pricing records.
// This interface allows for mocking in tests and decoupling from the network
// and filesystem layers.
type Source interface {
	FetchYear(ctx context.Context, year int) ([]Record, error)
}

// HTTPSource fetches pricing_<year>.json documents below a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource creates an HTTPSource with configured timeouts.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// FetchYear downloads and decodes one year's pricing document.
// It enforces a maximum response size limit.
func (s *HTTPSource) FetchYear(ctx context.Context, year int) ([]Record, error) {
	target := s.BaseURL + "/" + fmt.Sprintf(config.PricingFilePattern, year)

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompPricing),
		slog.String(config.LogKeyURL, target),
	)
	log.Debug("Fetching pricing year", slog.Int(config.LogKeyYear, year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error during fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Server returned error status",
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("%s: %d %s", config.ErrPricingStatus, resp.StatusCode, resp.Status)
	}

	records, err := decodeRecords(io.LimitReader(resp.Body, config.MaxPricingResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPricingDecode, err)
	}
	return records, nil
}

// DirSource reads pricing_<year>.json documents from a local directory.
type DirSource struct {
	Dir string
}

// FetchYear opens and decodes one year's pricing file.
func (s *DirSource) FetchYear(ctx context.Context, year int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.Dir, fmt.Sprintf(config.PricingFilePattern, year))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	records, err := decodeRecords(io.LimitReader(f, config.MaxPricingResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPricingDecode, err)
	}
	return records, nil
}

// ErrNoSource is returned by the null source used when no pricing location
// was configured at all.
var ErrNoSource = errors.New(config.ErrNoSource)

// NoSource always fails; the cache turns its failures into empty years, so a
// deployment without pricing simply shows "no data" everywhere.
type NoSource struct{}

func (NoSource) FetchYear(context.Context, int) ([]Record, error) {
	return nil, ErrNoSource
}
