package settings

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// Runtime setting keys and defaults.
const (
	// SiteNameKey is the setting key for the public site name.
	SiteNameKey = "SITE_NAME"
	// DefaultSiteName is the fallback public site name.
	DefaultSiteName = "FeedbackHQ"
)

// snapshot holds the in-memory settings values.
type snapshot struct {
	updatedAt time.Time
	values    map[string]json.RawMessage
}

// globalSnapshot stores the latest snapshot atomically.
var globalSnapshot atomic.Value // stores snapshot

// init seeds the global snapshot.
func init() {
	globalSnapshot.Store(snapshot{values: map[string]json.RawMessage{}})
}

// StoreSnapshot replaces the in-memory snapshot of DB-backed settings.
func StoreSnapshot(updatedAt time.Time, values map[string]json.RawMessage) {
	next := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		if v == nil {
			next[key] = nil
			continue
		}
		copied := make([]byte, len(v))
		copy(copied, v)
		next[key] = copied
	}

	globalSnapshot.Store(snapshot{
		updatedAt: updatedAt.UTC(),
		values:    next,
	})
}

// UpdatedAt returns the last update timestamp of the snapshot.
func UpdatedAt() time.Time {
	return loadSnapshot().updatedAt
}

// Value returns a copy of the raw setting value for a key.
func Value(key string) (json.RawMessage, bool) {
	cfg := loadSnapshot()
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	val, ok := cfg.values[key]
	if !ok {
		return nil, false
	}
	if val == nil {
		return nil, true
	}
	copied := make([]byte, len(val))
	copy(copied, val)
	return copied, true
}

// SiteName returns the configured site name, falling back to the default when
// the setting is absent or malformed.
func SiteName() string {
	raw, ok := Value(SiteNameKey)
	if !ok || len(raw) == 0 {
		return DefaultSiteName
	}
	var name string
	if errDecode := json.Unmarshal(raw, &name); errDecode != nil {
		return DefaultSiteName
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultSiteName
	}
	return name
}

// loadSnapshot returns the current snapshot with safe defaults.
func loadSnapshot() snapshot {
	v := globalSnapshot.Load()
	cfg, ok := v.(snapshot)
	if !ok {
		return snapshot{values: map[string]json.RawMessage{}}
	}
	if cfg.values == nil {
		return snapshot{updatedAt: cfg.updatedAt, values: map[string]json.RawMessage{}}
	}
	return cfg
}
