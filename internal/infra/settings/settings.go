package settings

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/h13-0/AppLauncher/internal/domain"
)

// EnvPrefix namespaces the environment overrides, e.g. APPLAUNCHER_DEBUG=1.
const EnvPrefix = "APPLAUNCHER"

const (
	KeyConfig  = "config"
	KeyDebug   = "debug"
	KeyConsole = "console"
	KeyRecord  = "record"
)

// RegisterFlags adds the launcher's persistent flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "Path to the launch config (default: AppLauncher.yaml beside the launcher)")
	fs.Bool(KeyDebug, false, "Write a debug log to logs/applauncher.log beside the launcher")
	fs.Bool(KeyConsole, false, "Report errors on stderr instead of a dialog")
	fs.Bool(KeyRecord, false, "Append each launch to logs/history.jsonl beside the launcher")
}

// Load resolves settings from flags and APPLAUNCHER_* environment variables.
// An explicitly set flag wins over the environment.
func Load(fs *pflag.FlagSet) (domain.Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyConsole, false)
	v.SetDefault(KeyRecord, false)

	if fs != nil {
		for _, key := range []string{KeyConfig, KeyDebug, KeyConsole, KeyRecord} {
			if f := fs.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return domain.Settings{}, err
				}
			}
		}
	}

	return domain.Settings{
		ConfigPath: strings.TrimSpace(v.GetString(KeyConfig)),
		Debug:      v.GetBool(KeyDebug),
		Console:    v.GetBool(KeyConsole),
		Record:     v.GetBool(KeyRecord),
	}, nil
}
