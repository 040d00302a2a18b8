package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used for pricing downloads.
var UserAgent = "Huisboek/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Huisboek"
	AppID             = "com.github.wvermeer.huisboek"
	LocalhostBindAddr = "127.0.0.1"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagPort        = "port"
	FlagLang        = "lang"
	FlagPricingURL  = "pricing-url"
	FlagPricingDir  = "pricing-dir"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stdout"
	FlagDescPort    = "TCP port to serve the dashboard API on"
	FlagDescLang    = "Display language for formatted labels (nl, en)"
	FlagDescPrURL   = "Base URL serving pricing_<year>.json files"
	FlagDescPrDir   = "Local directory containing pricing_<year>.json files"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Domain Constants (Revenue & Occupancy)
// -----------------------------------------------------------------------------

const (
	// NetFactor approximates after-fee revenue: net = gross * NetFactor.
	NetFactor = 0.76

	// DaysInYear is used for occupancy totals. Leap years are deliberately
	// ignored to stay compatible with the historical KPI figures.
	DaysInYear = 365

	// OwnerUseKeyword marks owner-personal-use rows inside the booking label.
	// Matched case-insensitively.
	OwnerUseKeyword = "huiseigenaar"

	// OwnerUseChannel is the display channel for owner-use bookings without
	// a usable booking label.
	OwnerUseChannel = "Huiseigenaar"

	// ChannelSeparator splits a composite booking label ("Ref | Channel").
	ChannelSeparator = "|"

	// Income sentinels meaning "no charge" in the spreadsheet export.
	NoChargeDash   = "-"
	NoChargeEmDash = "—"

	// NightsPerWeek caps the ISO-week occupancy stacking.
	NightsPerWeek = 7
)

// Season identifiers accepted by the monthly revenue filter.
const (
	SeasonAll    = "all"
	SeasonWinter = "winter"
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
)

// SeasonMonths maps a season to its arrival months (January = 1).
// Winter wraps the year boundary: December through March.
var SeasonMonths = map[string][]time.Month{
	SeasonWinter: {time.December, time.January, time.February, time.March},
	SeasonSpring: {time.April, time.May},
	SeasonSummer: {time.June, time.July, time.August},
	SeasonAutumn: {time.September, time.October, time.November},
}

// YearAll selects every year present in the data instead of a single one.
const YearAll = "ALL"

// Revenue modes for chart endpoints.
const (
	ModeGross = "gross"
	ModeNet   = "net"
)

// -----------------------------------------------------------------------------
// Spreadsheet Column Aliases
// -----------------------------------------------------------------------------

// The export uses Dutch column headers, with historical spelling variations.
// Each canonical field resolves through an ordered alias list; the first
// present, non-empty cell wins.
var (
	ColsArrival   = []string{"Aankomst"}
	ColsDeparture = []string{"Vertrek"}
	ColsNights    = []string{"Nachten"}
	ColsIncome    = []string{"Inkomsten"}
	ColsLabel     = []string{"Boeking"}
	ColsGuest     = []string{"Gast", "Naam"}
	ColsAdults    = []string{"Volw.", "Volwassenen"}
	ColsChildren  = []string{"Knd.", "Kinderen"}
	ColsInfants   = []string{"Bab.", "Baby"}
	ColsPhone     = []string{"Telefoon", "Phone", "Tel"}
	ColsEmail     = []string{"E-mailadres", "Email", "E-mail", "Mail"}
	ColsCountry   = []string{"Land", "Landcode", "Country code", "CC"}
)

// -----------------------------------------------------------------------------
// Pricing Data Source
// -----------------------------------------------------------------------------

const (
	// PricingFilePattern expects a year argument (pricing_2026.json).
	PricingFilePattern = "pricing_%d.json"
)

// Pricing record key aliases (Dutch primary, historical English fallbacks).
var (
	PricingKeysDate      = []string{"datum", "date"}
	PricingKeysSeason    = []string{"seizoen", "season"}
	PricingKeysMinNights = []string{"min_nachten", "min_nights", "minNights"}
	PricingKeysDayPrice  = []string{"dagprijs", "day_price", "dayPrice"}
	PricingKeysWeekPrice = []string{"weekprijs", "week_price", "weekPrice"}
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// DateFormatISO keys daily aggregates and pricing lookups (local date).
	DateFormatISO = "2006-01-02"

	// DateFormatNL is the spreadsheet's display format (DD-MM-YYYY).
	DateFormatNL = "02-01-2006"

	// Generic fallback layouts tried when the strict D-M-YYYY pattern fails.
	DateFormatRFC3339 = time.RFC3339
	DateFormatFullT   = "2006-01-02T15:04:05Z"

	// ISOYearPrefixLen derives the year from an ISO date string.
	ISOYearPrefixLen = 4

	// Limits
	MinPort = 1
	MaxPort = 65535

	// MaxUploadSize bounds a spreadsheet upload (32MB is far beyond any
	// realistic per-property export).
	MaxUploadSize = 32 * 1024 * 1024

	// MaxPricingResponseSize bounds one year's pricing JSON.
	MaxPricingResponseSize = 8 * 1024 * 1024

	// UID generation for calendar export
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s|%s"
	FormatUID       = "%s@%s"
	UIDSalt         = "huisboek-v1-"

	// File extensions accepted by the upload endpoint.
	ExtXLSX = ".xlsx"
	ExtXLS  = ".xls"

	// File permissions
	FilePermUserRW = 0o600
	DirPermUserRWX = 0o700
	LogFileName    = "huisboek.log"
)

// -----------------------------------------------------------------------------
// Localization
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "nl"
)

// SupportedLanguages lists the available display languages (ISO 639-1).
var SupportedLanguages = []string{"nl", "en"}

// Translation keys.
const (
	TKeyMonthPrefix  = "month_"   // month_1 .. month_12 (short labels)
	TKeyWeekdayPfx   = "weekday_" // weekday_1 .. weekday_7 (Monday first)
	TKeyEvtBooked    = "event_booked"    // Requires Guest, Nights
	TKeyEvtOwnerUse  = "event_owner_use" // Requires Nights
	TKeyNoPriceData  = "no_price_data"
	TKeyUnknownGuest = "unknown_guest"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Huisboek//Bookings//NL"
	ICalCalName = "Bezetting"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "huisboek"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// StubVCalendar is the minimal valid iCalendar object served before any
	// upload, so subscribed clients never see an invalid feed.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout        = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	ChannelBufferSize  = 1
	SchemeHTTP         = "http"
	SchemeHTTPS        = "https"
	AddrSeparator      = ":"
	DefaultPort        = "18090"
)

// -----------------------------------------------------------------------------
// Routes
// -----------------------------------------------------------------------------

const (
	RouteUpload       = "/api/upload"
	RouteYears        = "/api/years"
	RouteKPIs         = "/api/kpis"
	RouteMonthly      = "/api/revenue/monthly"
	RouteCumulative   = "/api/revenue/cumulative"
	RouteWeeks        = "/api/occupancy/weeks"
	RouteCalendar     = "/api/occupancy/calendar"
	RoutePricing      = "/api/pricing"
	RouteCalendarFeed = "/calendar.ics"
	RouteContacts     = "/contacts.vcf"

	QueryYear     = "year"
	QuerySeason   = "season"
	QueryMode     = "mode"
	QueryMonth    = "month"
	QueryDate     = "date"
	QueryPlatform = "platform"
	QueryOwner    = "owner"
	FormFile      = "file"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderRetryAfter      = "Retry-After"

	MimeJSON            = "application/json; charset=utf-8"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeVCard           = "text/vcard; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"
	CacheControlNone    = "no-store"

	AllowedMethodsRead = "GET, HEAD"
	RetryAfterSeconds  = "10"

	// FormatETag expects a hex digest argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPortRequired   = "server port is required"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrNoWorksheet    = "workbook contains no worksheet"
	ErrEmptySheet     = "worksheet is empty"
	ErrUnsupportedExt = "unsupported spreadsheet format"
	ErrOpenWorkbook   = "failed to open workbook"
	ErrPricingDecode  = "failed to decode pricing file"
	ErrPricingStatus  = "pricing server returned unexpected status"
	ErrNoSource       = "no pricing source configured"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrCacheDir       = "failed to resolve user cache directory"
	ErrCreateDir      = "failed to create log directory"
	ErrLogFile        = "failed to open log file"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgNoData       = "No bookings uploaded yet."
	HTTPMsgBadUpload    = "Upload must contain a spreadsheet file."
	HTTPMsgBadYear      = "Invalid year parameter."
	HTTPMsgBadMonth     = "Invalid month parameter."
	HTTPMsgBadDate      = "Invalid date parameter (expected YYYY-MM-DD)."
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgUploadDone     = "Spreadsheet processed"
	MsgRowSkipped     = "Skipping row with unusable dates"
	MsgPricingMissing = "Pricing unavailable for year, caching empty"
	MsgPricingLoaded  = "Pricing year loaded"
	MsgCacheUpdated   = "Export cache updated"
	MsgStateUpdated   = "Application state updated"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgCtxCancel      = "Context cancelled, shutting down"
	MsgLogWarning     = "warning: %s %q: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyYear      = "year"
	LogKeyRows      = "rows_total"
	LogKeyKept      = "rows_kept"
	LogKeyDropped   = "rows_dropped"
	LogKeyYears     = "years"
	LogKeyRecords   = "records"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyBookings  = "bookings"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompServer    = "server"
	CompBooking   = "booking"
	CompAggregate = "aggregate"
	CompPricing   = "pricing"
	CompIngest    = "ingest"
	CompStore     = "store"
	CompExport    = "export"
	CompL10n      = "l10n"
)
