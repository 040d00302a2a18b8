package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wvermeer/huisboek/internal/aggregate"
	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
	"github.com/wvermeer/huisboek/internal/ingest"
	"github.com/wvermeer/huisboek/internal/pricing"
	"github.com/wvermeer/huisboek/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlNone)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set(config.HeaderAllow, method)
		writeError(w, http.StatusMethodNotAllowed, config.HTTPMsgMethodNotAll)
		return false
	}
	return true
}

// yearSelection resolves the "year" query parameter against the known data:
// a number, "ALL", or empty (which defaults to the most recent year present).
func yearSelection(r *http.Request, state store.State) (year int, all bool, ok bool) {
	raw := r.URL.Query().Get(config.QueryYear)
	switch raw {
	case config.YearAll:
		return 0, true, true
	case "":
		if len(state.Years) == 0 {
			return 0, true, true
		}
		return state.Years[len(state.Years)-1], false, true
	default:
		y, err := strconv.Atoi(raw)
		if err != nil {
			return 0, false, false
		}
		return y, false, true
	}
}

func boolQuery(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "0", "false", "no":
		return false
	default:
		return true
	}
}

// handleUpload ingests a spreadsheet and replaces the application state.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)

	file, header, err := r.FormFile(config.FormFile)
	if err != nil {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadUpload)
		return
	}
	defer func() { _ = file.Close() }()

	rows, err := ingest.ReadWorkbook(file, header.Filename)
	if err != nil {
		slog.Warn(config.ErrOpenWorkbook,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyFile, header.Filename,
			config.LogKeyError, err,
		)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings := s.norm.Rows(rows)
	s.store.Update(func(st *store.State) {
		st.Bookings = bookings
		st.Filename = header.Filename
		st.UploadedAt = time.Now()
	})

	state := s.store.Get()
	slog.Info(config.MsgUploadDone,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyFile, header.Filename,
		config.LogKeyRows, len(rows),
		config.LogKeyKept, len(bookings),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"filename": state.Filename,
		"rows":     len(rows),
		"bookings": len(bookings),
		"years":    state.Years,
		"uploaded": state.UploadedAt,
	})
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	state := s.store.Get()

	defaultYear := config.YearAll
	if len(state.Years) > 0 {
		defaultYear = strconv.Itoa(state.Years[len(state.Years)-1])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"years":   state.Years,
		"default": defaultYear,
	})
}

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	state := s.store.Get()
	year, all, ok := yearSelection(r, state)
	if !ok {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadYear)
		return
	}

	bookings := state.Bookings
	if !all {
		bookings = aggregate.ByArrivalYear(bookings, year)
	}
	writeJSON(w, http.StatusOK, aggregate.KPIs(bookings))
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	state := s.store.Get()
	year, all, ok := yearSelection(r, state)
	if !ok || all {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadYear)
		return
	}
	season := r.URL.Query().Get(config.QuerySeason)
	if season == "" {
		season = config.SeasonAll
	}

	type monthView struct {
		Month int     `json:"month"`
		Label string  `json:"label"`
		Gross float64 `json:"gross"`
		Net   float64 `json:"net"`
	}
	buckets := aggregate.MonthlyRevenue(state.Bookings, year, season)
	months := make([]monthView, len(buckets))
	for i, b := range buckets {
		months[i] = monthView{
			Month: int(b.Month),
			Label: s.translator.MonthShort(b.Month),
			Gross: b.Gross,
			Net:   b.Net,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"year":   year,
		"season": season,
		"months": months,
	})
}

func (s *Server) handleCumulative(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	state := s.store.Get()
	year, all, ok := yearSelection(r, state)
	if !ok {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadYear)
		return
	}
	mode := r.URL.Query().Get(config.QueryMode)
	if mode == "" {
		mode = config.ModeGross
	}

	bookings := state.Bookings
	if !all {
		bookings = aggregate.ByArrivalYear(bookings, year)
	}
	series := aggregate.CumulativeDaily(bookings, mode)

	labels := make([]string, len(series.Labels))
	dates := make([]string, len(series.Labels))
	for i, d := range series.Labels {
		labels[i] = s.translator.DateShort(d)
		dates[i] = booking.DayKey(d)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"mode":        mode,
		"labels":      labels,
		"dates":       dates,
		"values":      series.Values,
		"points_meta": series.PointsMeta,
	})
}

func (s *Server) handleWeeks(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	state := s.store.Get()
	year, all, ok := yearSelection(r, state)
	if !ok || all {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadYear)
		return
	}

	bookings := visibleBookings(state.Bookings, boolQuery(r, config.QueryPlatform), boolQuery(r, config.QueryOwner))
	writeJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"weeks": aggregate.WeekOccupancy(bookings, year),
	})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	state := s.store.Get()
	year, all, ok := yearSelection(r, state)
	if !ok || all {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadYear)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get(config.QueryMonth))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadMonth)
		return
	}

	grid := aggregate.MonthGrid(year, time.Month(month))
	fills := aggregate.DayFills(state.Bookings, grid.Start, grid.EndExclusive,
		boolQuery(r, config.QueryPlatform), boolQuery(r, config.QueryOwner))

	// The visible window can straddle up to three calendar years.
	lastDay := booking.AddDays(grid.EndExclusive, -1)
	s.pricing.Preload(r.Context(), []int{grid.Start.Year(), lastDay.Year()})

	type dayView struct {
		Date    string           `json:"date"`
		Day     int              `json:"day"`
		Weekday string           `json:"weekday"`
		InMonth bool             `json:"in_month"`
		Fills   []aggregate.Fill `json:"fills"`
		Price   *pricing.Record  `json:"price"`
	}
	days := make([]dayView, 0, booking.DiffDays(grid.Start, grid.EndExclusive))
	for d := grid.Start; d.Before(grid.EndExclusive); d = booking.AddDays(d, 1) {
		key := booking.DayKey(d)
		days = append(days, dayView{
			Date:    key,
			Day:     d.Day(),
			Weekday: s.translator.WeekdayShort(d.Weekday()),
			InMonth: d.Month() == time.Month(month) && d.Year() == year,
			Fills:   fills[key],
			Price:   s.pricing.Lookup(key),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"month": month,
		"grid":  grid,
		"days":  days,
	})
}

func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	date := r.URL.Query().Get(config.QueryDate)
	parsed, err := time.ParseInLocation(config.DateFormatISO, date, time.Local)
	if err != nil {
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadDate)
		return
	}

	s.pricing.Preload(r.Context(), []int{parsed.Year()})
	record := s.pricing.Lookup(date)
	writeJSON(w, http.StatusOK, map[string]any{
		"date":      date,
		"available": record != nil,
		"display":   s.priceDisplay(record),
		"record":    record,
	})
}

// priceDisplay renders the tooltip line for a pricing record, or the em-dash
// placeholder when the year has no data.
func (s *Server) priceDisplay(record *pricing.Record) string {
	if record == nil {
		return s.translator.Msg(config.TKeyNoPriceData)
	}
	return s.translator.EUR(record.DayPrice)
}

// visibleBookings applies the platform/owner show-toggles before any
// aggregation, so hidden stay types occupy nothing.
func visibleBookings(bookings []booking.Booking, showPlatform, showOwner bool) []booking.Booking {
	if showPlatform && showOwner {
		return bookings
	}
	out := make([]booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.OwnerUse && showOwner {
			out = append(out, b)
		}
		if !b.OwnerUse && showPlatform {
			out = append(out, b)
		}
	}
	return out
}
