package pricing

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/wvermeer/huisboek/internal/config"
)

// Cache maps year -> ISO date -> Record, populated lazily per year.
// Safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	source Source
	byYear map[int]map[string]Record
}

// NewCache creates an empty cache backed by the given source.
func NewCache(source Source) *Cache {
	return &Cache{
		source: source,
		byYear: make(map[int]map[string]Record),
	}
}

// Preload fetches every not-yet-cached year, all in parallel, and blocks
// until each has completed. A failed year is cached as an empty map after one
// warning, so later lookups degrade to "no data" instead of refetching.
func (c *Cache) Preload(ctx context.Context, years []int) {
	c.mu.Lock()
	missing := make([]int, 0, len(years))
	for _, y := range years {
		if _, ok := c.byYear[y]; !ok {
			missing = append(missing, y)
		}
	}
	c.mu.Unlock()
	if len(missing) == 0 {
		return
	}

	log := slog.With(slog.String(config.LogKeyComponent, config.CompPricing))

	var wg sync.WaitGroup
	for _, year := range missing {
		year := year
		wg.Add(1)
		go func() {
			defer wg.Done()

			byDate := make(map[string]Record)
			records, err := c.source.FetchYear(ctx, year)
			if err != nil {
				log.Warn(config.MsgPricingMissing,
					slog.Int(config.LogKeyYear, year),
					slog.Any(config.LogKeyError, err),
				)
			} else {
				for _, r := range records {
					byDate[r.Date] = r
				}
				log.Info(config.MsgPricingLoaded,
					slog.Int(config.LogKeyYear, year),
					slog.Int(config.LogKeyRecords, len(byDate)),
				)
			}

			c.mu.Lock()
			c.byYear[year] = byDate
			c.mu.Unlock()
		}()
	}
	wg.Wait()
}

// Lookup returns the record for an ISO date (YYYY-MM-DD), or nil when the
// date's year is not cached or has no entry for that day. Safe to call before
// Preload; it never triggers a fetch.
func (c *Cache) Lookup(isoDate string) *Record {
	if len(isoDate) < config.ISOYearPrefixLen {
		return nil
	}
	year, err := strconv.Atoi(isoDate[:config.ISOYearPrefixLen])
	if err != nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	byDate, ok := c.byYear[year]
	if !ok {
		return nil
	}
	rec, ok := byDate[isoDate]
	if !ok {
		return nil
	}
	return &rec
}
