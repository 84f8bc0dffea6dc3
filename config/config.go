// Package config loads and saves the ambient settings exhibitor.Exhibitor and
// strategist.Strategist need at startup: workspace geometry/name template,
// the choose_target policy, and the float-rules file path. Adapted from the
// teacher's defaultConfig/loadConfig/saveConfig trio, keeping the
// env-fallback-then-store-override shape but trading file-navigator options
// for compositor ones.
package config

import (
	"database/sql"
	"os"

	"github.com/montrey/framewm/exhibitor"
	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/store"
	"github.com/montrey/framewm/strategist"
)

// Config bundles every setting the demo needs to build an exhibitor.Exhibitor
// and a strategist.Strategist.
type Config struct {
	Compositor exhibitor.CompositorConfig
	Strategist strategist.Config
}

// Default returns the built-in defaults, with FloatRulesPath taken from
// $FRAMEWM_FLOAT_RULES when set.
func Default() Config {
	cfg := Config{
		Compositor: exhibitor.DefaultCompositorConfig(),
		Strategist: strategist.Config{
			ChooseTarget:   strategist.AnchoredButPopups,
			FloatRulesPath: os.Getenv("FRAMEWM_FLOAT_RULES"),
		},
	}
	return cfg
}

// Load returns Default(), overridden by whatever is present in db.
func Load(db *sql.DB) Config {
	cfg := Default()

	if v, _ := store.GetSetting(db, "workspace_geometry"); v != "" {
		if g, ok := parseGeometry(v); ok {
			cfg.Compositor.WorkspaceGeometry = g
		}
	}
	if v, _ := store.GetSetting(db, "workspace_name_template"); v != "" {
		cfg.Compositor.WorkspaceNameTemplate = v
	}
	if v, _ := store.GetSetting(db, "choose_target"); v != "" {
		if m, ok := parseMode(v); ok {
			cfg.Strategist.ChooseTarget = m
		}
	}
	if v, _ := store.GetSetting(db, "float_rules_path"); v != "" {
		cfg.Strategist.FloatRulesPath = v
	}

	return cfg
}

// Save persists cfg to db so a later Load reproduces it.
func Save(db *sql.DB, cfg Config) error {
	if err := store.SetSetting(db, "workspace_geometry", cfg.Compositor.WorkspaceGeometry.String()); err != nil {
		return err
	}
	if err := store.SetSetting(db, "workspace_name_template", cfg.Compositor.WorkspaceNameTemplate); err != nil {
		return err
	}
	if err := store.SetSetting(db, "choose_target", cfg.Strategist.ChooseTarget.String()); err != nil {
		return err
	}
	if err := store.SetSetting(db, "float_rules_path", cfg.Strategist.FloatRulesPath); err != nil {
		return err
	}
	return nil
}

func parseGeometry(v string) (frame.Geometry, bool) {
	switch v {
	case "Horizontal":
		return frame.Horizontal, true
	case "Vertical":
		return frame.Vertical, true
	case "Stacked":
		return frame.Stacked, true
	default:
		return 0, false
	}
}

func parseMode(v string) (strategist.Mode, bool) {
	switch v {
	case "anchored":
		return strategist.Anchored, true
	case "anchored_but_popups":
		return strategist.AnchoredButPopups, true
	default:
		return 0, false
	}
}
