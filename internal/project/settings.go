package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"remappings/internal/config"
	"remappings/internal/errors"
	"remappings/internal/remapping"
)

// ConfigFileName is the project configuration file looked up at the root.
const ConfigFileName = "foundry.toml"

// RemappingsFileName is the plain-text remappings file looked up at the root.
const RemappingsFileName = "remappings.txt"

const envRemappingsKey = "env_remappings"

// Settings are the remapping-related values of one configuration profile.
type Settings struct {
	// Remappings as written in the config file, or taken from the environment.
	Remappings []string
	// RemappingsSource names where Remappings came from, for diagnostics.
	RemappingsSource string
	// Libs are library directories relative to the root.
	Libs []string
	// AutoDetect enables remapping inference from Libs.
	AutoDetect bool
}

// LoadSettings reads foundry.toml under root, if present, for the given
// profile. Keys missing from the profile fall back to the default profile.
// FOUNDRY_REMAPPINGS (or DAPP_REMAPPINGS) replaces the configured list.
func LoadSettings(root, profile string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.BindEnv(envRemappingsKey, "FOUNDRY_REMAPPINGS", "DAPP_REMAPPINGS"); err != nil {
		return nil, errors.NewConfigError("failed to bind environment", err)
	}

	path := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigErrorWithPath(path, "failed to read config", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.NewConfigErrorWithPath(path, "failed to stat config", err)
	}

	profile = strings.ToLower(profile)
	lookup := func(key string) string {
		k := "profile." + profile + "." + key
		if profile != config.DefaultProfile && !v.IsSet(k) {
			k = "profile." + config.DefaultProfile + "." + key
		}
		return k
	}

	s := &Settings{
		Libs:       []string{"lib"},
		AutoDetect: true,
	}

	if k := lookup("remappings"); v.IsSet(k) {
		s.Remappings = v.GetStringSlice(k)
		s.RemappingsSource = ConfigFileName + ":" + k
	}
	if env := v.GetString(envRemappingsKey); strings.TrimSpace(env) != "" {
		s.Remappings = remapping.SplitList(env)
		s.RemappingsSource = "environment"
	}
	if k := lookup("libs"); v.IsSet(k) {
		s.Libs = v.GetStringSlice(k)
	}
	if k := lookup("auto_detect_remappings"); v.IsSet(k) {
		s.AutoDetect = v.GetBool(k)
	}

	return s, nil
}
