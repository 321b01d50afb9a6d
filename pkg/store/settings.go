package store

import (
	"context"
	"encoding/json"
)

// Settings is the per-install configuration document: initialized once at
// startup, mutated only by explicit toggles, persisted for the next start.
type Settings struct {
	DarkMode      bool `json:"darkMode"`
	Notifications bool `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{Notifications: true}
}

// LoadSettings reads the settings document, falling back to the defaults
// when it is absent or unreadable.
func LoadSettings(ctx context.Context, kv KV) (Settings, error) {
	raw, ok, err := kv.Get(ctx, SettingsKey)
	if err != nil {
		return DefaultSettings(), err
	}
	if !ok || raw == "" {
		return DefaultSettings(), nil
	}
	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return DefaultSettings(), nil
	}
	return s, nil
}

func SaveSettings(ctx context.Context, kv KV, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return kv.Set(ctx, SettingsKey, string(data))
}
