package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/moodlog-app/moodlog/pkg/store"
)

// Settings shows or toggles the per-install configuration.
type Settings struct {
	Dark          bool
	Light         bool
	Notifications *bool

	KV store.KV
}

func (n *Settings) Do(ctx context.Context) error {
	if n.KV == nil {
		return errors.New("can not load settings, no persistence")
	}
	if n.Dark && n.Light {
		return errors.New("pick one of --dark and --light")
	}

	s, err := store.LoadSettings(ctx, n.KV)
	if err != nil {
		return err
	}

	changed := false
	if n.Dark {
		s.DarkMode = true
		changed = true
	}
	if n.Light {
		s.DarkMode = false
		changed = true
	}
	if n.Notifications != nil {
		s.Notifications = *n.Notifications
		changed = true
	}
	if changed {
		if err := store.SaveSettings(ctx, n.KV, s); err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("dark mode", onOff(s.DarkMode))
	tbl.AddRow("notifications", onOff(s.Notifications))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
