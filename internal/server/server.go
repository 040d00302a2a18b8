// Package server is the HTTP delivery surface of the dashboard: the JSON API
// the browser consumes, the spreadsheet upload endpoint, and the cached
// iCalendar/vCard exports.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
	"github.com/wvermeer/huisboek/internal/export"
	"github.com/wvermeer/huisboek/internal/l10n"
	"github.com/wvermeer/huisboek/internal/pricing"
	"github.com/wvermeer/huisboek/internal/store"
)

// cacheItem stores one rendered export and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	contentType  string
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// Server wires the store, the pricing cache and the export builder behind an
// HTTP mux.
type Server struct {
	Port string

	store      *store.Store
	pricing    *pricing.Cache
	translator *l10n.Translator
	builder    *export.Builder
	norm       *booking.Normalizer

	// Export caches use atomic.Pointer for lock-free reads: the exports are
	// read often by calendar clients but rebuilt only on upload.
	calendarCache atomic.Pointer[cacheItem]
	contactsCache atomic.Pointer[cacheItem]
}

// New creates the server and subscribes it to state changes so the export
// caches rebuild after every upload. The calendar cache starts with the
// empty-feed stub so subscribed clients get a valid response from the start.
func New(port string, st *store.Store, pc *pricing.Cache, tr *l10n.Translator) *Server {
	s := &Server{
		Port:       port,
		store:      st,
		pricing:    pc,
		translator: tr,
		builder:    export.NewBuilder(tr),
		norm:       booking.NewNormalizer(),
	}
	s.rebuildExports(st.Get())
	st.Subscribe(s.rebuildExports)
	return s
}

// Handler builds the route table. Exposed separately from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteUpload, s.handleUpload)
	mux.HandleFunc(config.RouteYears, s.handleYears)
	mux.HandleFunc(config.RouteKPIs, s.handleKPIs)
	mux.HandleFunc(config.RouteMonthly, s.handleMonthly)
	mux.HandleFunc(config.RouteCumulative, s.handleCumulative)
	mux.HandleFunc(config.RouteWeeks, s.handleWeeks)
	mux.HandleFunc(config.RouteCalendar, s.handleCalendar)
	mux.HandleFunc(config.RoutePricing, s.handlePricing)
	mux.HandleFunc(config.RouteCalendarFeed, s.handleExport(&s.calendarCache))
	mux.HandleFunc(config.RouteContacts, s.handleExport(&s.contactsCache))
	return mux
}

// Start runs the HTTP server and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// rebuildExports re-renders both export documents from a state snapshot and
// atomically swaps the served caches.
func (s *Server) rebuildExports(state store.State) {
	if data, err := s.builder.Calendar(state.Bookings); err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	} else {
		storeCache(&s.calendarCache, data, config.MimeTextCalendar)
	}

	if data, err := s.builder.Contacts(state.Bookings); err != nil {
		slog.Error(config.ErrVCardEncode,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	} else {
		storeCache(&s.contactsCache, data, config.MimeVCard)
	}
}

func storeCache(cache *atomic.Pointer[cacheItem], data []byte, contentType string) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	item := &cacheItem{
		data:         data,
		contentType:  contentType,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	// Atomic store ensures any concurrent reader sees either the old or
	// the new complete item, never a partial state.
	cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// handleExport serves a cached export with conditional-request support.
func (s *Server) handleExport(cache *atomic.Pointer[cacheItem]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set(config.HeaderAllow, config.AllowedMethodsRead)
			http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
			return
		}

		item := cache.Load()
		if item == nil {
			w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
			http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
			return
		}

		w.Header().Set(config.HeaderContentType, item.contentType)
		w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
		w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
		w.Header().Set(config.HeaderETag, item.etag)
		w.Header().Set(config.HeaderLastModified, item.lastModified)

		if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
			if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
				if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
					if !serverTime.After(clientTime) {
						w.WriteHeader(http.StatusNotModified)
						return
					}
				}
			}
		}

		if r.Method == http.MethodGet {
			if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
				slog.Error(config.ErrWriteResp,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyError, err,
				)
			}
		}
	}
}
