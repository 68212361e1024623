// Package constants provides shared constants for the carbon-footprint application.
package constants

// Unit conversion constants
const (
	// GramsPerKilogram converts between grams and kilograms
	GramsPerKilogram = 1000.0

	// DecimalPrecision is the precision for display rounding (2 decimal places)
	DecimalPrecision = 100

	// DaysPerWeek is the divisor used to turn a period in days into weeks
	DaysPerWeek = 7.0

	// DaysPerMonth is the divisor used to turn a period in days into months of
	// electricity billing
	DaysPerMonth = 30.0

	// DaysPerYear is the period length labelled as one year
	DaysPerYear = 365.0
)

// Household usage assumptions
const (
	// ShowerLitersPerMinute is the assumed shower flow rate
	ShowerLitersPerMinute = 10.0

	// LaundryLitersPerLoad is the assumed water used by one laundry load
	LaundryLitersPerLoad = 100.0

	// CommuteTripsPerDay counts the outbound and return legs of a commute
	CommuteTripsPerDay = 2.0

	// FlightLegsPerTrip counts the outbound and return legs of a flight
	FlightLegsPerTrip = 2.0
)

// Activity defaults applied by the configuration layer
const (
	// DefaultPeriodDays is the reporting period used when none is configured
	DefaultPeriodDays = 30.0

	// DefaultRecyclingFactor leaves the total unscaled
	DefaultRecyclingFactor = 1.0

	// DefaultTransportMode is the selector used when a travel mode is omitted
	DefaultTransportMode = "walk"

	// DefaultCabinClass is the selector used when a cabin class is omitted
	DefaultCabinClass = "economy"

	// DefaultSupplier is the selector used when an electricity supplier is omitted
	DefaultSupplier = "CLP"

	// MaxDaysPerWeek bounds work days and weekend trips for configuration warnings
	MaxDaysPerWeek = 7.0

	// MaxReasonablePeriodDays is the longest period accepted without a warning
	MaxReasonablePeriodDays = 3650.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. CARBON_LOGGING_LEVEL
	EnvPrefix = "CARBON"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultCacheTTLSeconds is how long a computed report stays cached
	DefaultCacheTTLSeconds = 300

	// DefaultRateLimitRequests is the per-client token bucket capacity
	DefaultRateLimitRequests = 60

	// DefaultRateLimitWindowSeconds is the bucket refill window
	DefaultRateLimitWindowSeconds = 60

	// ShutdownTimeoutSeconds bounds graceful server shutdown
	ShutdownTimeoutSeconds = 10
)

// Cache backends
const (
	// CacheBackendMemory keeps reports in process memory
	CacheBackendMemory = "memory"

	// CacheBackendRedis keeps reports in redis
	CacheBackendRedis = "redis"

	// CacheBackendNone disables the report cache
	CacheBackendNone = "none"
)
