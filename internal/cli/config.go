package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	envPrefix = "CONTACTS"

	cfgKeyBackend   = "backend"
	cfgKeyFormat    = "format"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
)

// flagForKey maps config keys to the persistent flags that override them.
var flagForKey = map[string]string{
	cfgKeyBackend:   "backend",
	cfgKeyFormat:    "format",
	cfgKeyLogLevel:  "log-level",
	cfgKeyLogFormat: "log-format",
}

// settings is the effective configuration of one invocation.
type settings struct {
	types.Config `yaml:",inline"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`

	source string // config file that was read; empty when none was found
}

// loadSettings resolves configuration with the precedence
// flag > CONTACTS_* env > config.yaml > default.
// A missing config.yaml is not an error; the file is never created.
func loadSettings(root *cobra.Command, flags rootFlags) (settings, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return settings{}, sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendMemory)
	v.SetDefault(cfgKeyFormat, types.FormatText)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "text")

	v.SetConfigName(paths.ConfigName)
	v.SetConfigType(paths.ConfigType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagForKey {
		if f := root.PersistentFlags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, sysError(fmt.Errorf("bind flag %s: %w", name, err))
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, userError(fmt.Errorf("read config: %w", err))
		}
	}

	s := settings{
		Config: types.Config{
			Backend: strings.ToLower(v.GetString(cfgKeyBackend)),
			Format:  strings.ToLower(v.GetString(cfgKeyFormat)),
		},
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
		source:    v.ConfigFileUsed(),
	}

	if flags.jsonMode {
		if flags.format != "" && flags.format != types.FormatJSON {
			return settings{}, userError(fmt.Errorf("--json conflicts with --format %s", flags.format))
		}
		s.Format = types.FormatJSON
	}

	if err := s.Validate(); err != nil {
		return settings{}, userError(fmt.Errorf("invalid configuration: %w", err))
	}
	return s, nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.cfg.source != "" {
				if _, err := fmt.Fprintf(out, "# read from %s\n", a.cfg.source); err != nil {
					return sysError(err)
				}
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return sysError(fmt.Errorf("encode config: %w", err))
			}
			if err := enc.Close(); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}
