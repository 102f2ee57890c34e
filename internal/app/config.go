package app

import (
	"os"
	"path/filepath"
	"strconv"
)

// Constants
const (
	DefaultStoreFile = "campus_events.json"
	BackupSuffix     = ".backup"
	TmpSuffix        = ".tmp.json"
	FilePermissions  = 0644

	// Roles
	RoleStudent   = "student"
	RoleOrganizer = "organizer"

	// Store keys (the persisted interface of the system)
	KeyUsers            = "users"
	KeyCurrentUser      = "currentUser"
	KeyUserRole         = "userRole"
	KeyUserEmail        = "userEmail"
	KeyUserID           = "userId"
	KeyEvents           = "events"
	KeyEventID          = "eventId"
	KeySelectedDistrict = "selectedDistrict"

	// Result messages
	MsgEmailRegistered    = "Email already registered"
	MsgRegistrationOK     = "Registration successful"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidPassword    = "Invalid password"
	MsgLoginOK            = "Login successful"

	// Date and time layouts used across the catalog and exporters
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// ICS constants
	ICSProductID = "-//CampusHub//Campus Events//EN"
	ICSTimezone  = "Asia/Kolkata"
)

// Districts that events can be filed under
var Districts = []string{
	"North Campus",
	"South Campus",
	"East Campus",
	"West Campus",
	"City Center",
	"Tech Park",
}

// Categories maps category keys to their display names
var Categories = map[string]string{
	"technical": "Technical",
	"cultural":  "Cultural",
	"sports":    "Sports",
	"workshop":  "Workshop",
	"seminar":   "Seminar",
}

// Config holds application level configuration loaded from environment variables.
type Config struct {
	// StorePath is the file the key-value store is persisted to.
	StorePath string
	// SeedFile optionally overrides the embedded seed dataset.
	SeedFile string
	// LegacyPopularSort keeps the original behaviour of PopularEvents sorting
	// the live catalog in place. Off sorts a copy instead.
	LegacyPopularSort bool
}

// LoadConfig builds Config from environment with sensible defaults.
func LoadConfig() Config {
	return Config{
		StorePath:         getEnv("CAMPUS_EVENTS_STORE", defaultStorePath()),
		SeedFile:          os.Getenv("CAMPUS_EVENTS_SEED"),
		LegacyPopularSort: getEnvBool("CAMPUS_EVENTS_LEGACY_POPULAR_SORT", true),
	}
}

func defaultStorePath() string {
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Join(cwd, DefaultStoreFile)
	}
	return DefaultStoreFile
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
