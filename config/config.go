package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultPickupPassGrace    = 2 * time.Hour
	defaultQRSize             = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database controls schema creation and query logging
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Assignment tunes the drop point assignment engine
	Assignment *AssignmentConfig `json:"assignment" yaml:"assignment"`

	// PickupPass configures signed pickup passes and their QR rendering
	PickupPass *PickupPassConfig `json:"pickupPass" yaml:"pickupPass"`

	// PubSub configuration for assignment event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema migration and query logging behaviour
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AssignmentConfig defines the constants used when picking a drop point
type AssignmentConfig struct {
	// Search radius in kilometers for candidate drop points
	SearchRadiusKm float64 `json:"searchRadiusKm" yaml:"searchRadiusKm"`

	// Maximum number of candidates evaluated per request
	MaxCandidates int `json:"maxCandidates" yaml:"maxCandidates"`

	// Radius and result cap used by the nearby drop point query
	NearbyRadiusKm float64 `json:"nearbyRadiusKm" yaml:"nearbyRadiusKm"`
	NearbyLimit    int     `json:"nearbyLimit" yaml:"nearbyLimit"`

	// Pickup slot layout
	SlotStartHour     int     `json:"slotStartHour" yaml:"slotStartHour"`
	SlotDurationHours int     `json:"slotDurationHours" yaml:"slotDurationHours"`
	DefaultCapacityKg float64 `json:"defaultCapacityKg" yaml:"defaultCapacityKg"`

	// Kilograms of produce that fit in one crate
	KgPerCrate float64 `json:"kgPerCrate" yaml:"kgPerCrate"`

	// Weekday index (0 = Sunday) skipped when defaulting the preferred date
	RestDay int `json:"restDay" yaml:"restDay"`

	// IANA zone used for pickup windows and opening hours, e.g. "Asia/Kolkata"
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

// PickupPassConfig defines pickup pass signing and rendering
type PickupPassConfig struct {
	Secret string `json:"secret" yaml:"secret"`

	// Grace period after the pickup window closes during which the pass stays valid
	GracePeriod time.Duration `json:"gracePeriod" yaml:"gracePeriod"`

	QRSize               int    `json:"qrSize" yaml:"qrSize"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Optional API endpoint override, e.g. the Pub/Sub emulator (for google provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// DefaultAssignmentConfig returns the assignment constants used when none are configured.
func DefaultAssignmentConfig() *AssignmentConfig {
	return &AssignmentConfig{
		SearchRadiusKm:    20,
		MaxCandidates:     20,
		NearbyRadiusKm:    20,
		NearbyLimit:       10,
		SlotStartHour:     7,
		SlotDurationHours: 2,
		DefaultCapacityKg: 1000,
		KgPerCrate:        50,
		RestDay:           0,
		TimeZone:          "Local",
	}
}

// Location resolves the configured time zone, falling back to time.Local.
func (c *AssignmentConfig) Location() *time.Location {
	if c == nil || c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local
	}

	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}

	return loc
}

// New loads config.yaml from the working directory or a parent config
// directory, applies environment overrides and fills unset values with
// defaults.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyAssignmentDefaults(cfg)

	if cfg.PickupPass == nil {
		cfg.PickupPass = &PickupPassConfig{}
	}
	if cfg.PickupPass.GracePeriod <= 0 {
		cfg.PickupPass.GracePeriod = defaultPickupPassGrace
	}
	if cfg.PickupPass.QRSize <= 0 {
		cfg.PickupPass.QRSize = defaultQRSize
	}
}

// applyAssignmentDefaults fills zero-valued assignment settings with their defaults.
func applyAssignmentDefaults(cfg *Config) {
	defaults := DefaultAssignmentConfig()
	if cfg.Assignment == nil {
		cfg.Assignment = defaults

		return
	}

	a := cfg.Assignment
	if a.SearchRadiusKm <= 0 {
		a.SearchRadiusKm = defaults.SearchRadiusKm
	}
	if a.MaxCandidates <= 0 {
		a.MaxCandidates = defaults.MaxCandidates
	}
	if a.NearbyRadiusKm <= 0 {
		a.NearbyRadiusKm = defaults.NearbyRadiusKm
	}
	if a.NearbyLimit <= 0 {
		a.NearbyLimit = defaults.NearbyLimit
	}
	if a.SlotStartHour <= 0 || a.SlotStartHour > 23 {
		a.SlotStartHour = defaults.SlotStartHour
	}
	if a.SlotDurationHours <= 0 {
		a.SlotDurationHours = defaults.SlotDurationHours
	}
	if a.DefaultCapacityKg <= 0 {
		a.DefaultCapacityKg = defaults.DefaultCapacityKg
	}
	if a.KgPerCrate <= 0 {
		a.KgPerCrate = defaults.KgPerCrate
	}
	if a.RestDay < 0 || a.RestDay > 6 {
		a.RestDay = defaults.RestDay
	}
	if a.TimeZone == "" {
		a.TimeZone = defaults.TimeZone
	}
}
