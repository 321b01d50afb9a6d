package store

import (
	"context"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Fixed keys the journal serializes under. Renaming either is a breaking
// change for existing installs.
const (
	EntriesKey  = "entries"
	SettingsKey = "settings"
)

// KV is the durable key-value persistence collaborator. Values are whole
// serialized documents; there is no partial-update primitive.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}

// Open creates a KV backed by diskv using the provided config.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &diskKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      basePath + "/.tmp", // write-then-rename keeps Set all-or-nothing
		CacheSizeMax: 1024 * 1024,        // 1MB
	}), basePath: basePath}, nil
}

type diskKV struct {
	d        *diskv.Diskv
	basePath string
}

func (k *diskKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !k.d.Has(key) {
		return "", false, nil
	}
	val, err := k.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (k *diskKV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return k.d.Write(key, []byte(value))
}

func (k *diskKV) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return k.d.EraseAll()
}
