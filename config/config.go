package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Postgres Config
const POSTGRES_URL_ENV = "DATABASE_URL"

// Availability Refresher config
const AVAILABILITY_REFRESHER_SCHEDULE_MINUTES = 30

// rec.us API
const REC_US_ENDPOINT_BASE_V1 = "https://api.rec.us/v1"
const REC_US_BOOKING_BASE = "https://rec.us"

// The vendor tolerates roughly one location fetch per second; the refresher
// stays under that.
const REC_US_REQUESTS_PER_SECOND = 1
const REC_US_REQUEST_BURST = 2

// Map defaults. The region is compact enough that a centroid view works; the
// fixed center is downtown San Francisco, used when no venue has coordinates.
const REGION_CENTER_LAT = 37.7749
const REGION_CENTER_LNG = -122.4194
const DEFAULT_MAP_ZOOM = 12

// Popup sizing. Panels scale with zoom relative to a baseline and are
// clamped; square panels use the tighter range.
const POPUP_BASE_ZOOM = 12
const POPUP_BASE_WIDTH_PX = 280
const POPUP_MIN_WIDTH_PX = 150
const POPUP_MAX_WIDTH_PX = 600
const POPUP_SQUARE_MIN_PX = 200
const POPUP_SQUARE_MAX_PX = 500

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const REC_US_LOCATION_RESPONSE_RESOURCE = "recus_location_response.json"
const VENUES_RESOURCE = "venues.json"
const SLOTS_RESOURCE = "slots.json"

// LoadEnv reads .env if one is present. Missing files are fine in prod.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

// PostgresURL returns the availability store DSN.
func PostgresURL() string {
	return os.Getenv(POSTGRES_URL_ENV)
}

// RedisAddress returns the venue store address, with env override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
