package configsource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fdkevin0/md2html"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by md2html.
const EnvPrefix = "MD2HTML"

// NewViperForCommand layers defaults, an optional TOML file, MD2HTML_*
// environment variables and the command's flags, in increasing precedence.
func NewViperForCommand(cmd *cobra.Command, configFlagValue string) (*viper.Viper, error) {
	v := viper.New()
	applyViperDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindViperFlags(v, cmd); err != nil {
		return nil, err
	}

	configPath, explicit, err := resolveConfigFilePath(cmd, configFlagValue)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) && !explicit {
				return v, nil
			}
			return nil, md2html.NewConfigError(fmt.Sprintf("failed to read config file %q", configPath), err)
		}
	}

	return v, nil
}

func applyViperDefaults(v *viper.Viper) {
	defaultConfig := md2html.NewDefaultConfig()
	v.SetDefault("src", defaultConfig.Src)
	v.SetDefault("debug", defaultConfig.Debug)
}

func bindViperFlags(v *viper.Viper, cmd *cobra.Command) error {
	visited := make(map[string]struct{})
	var bindErr error
	bindFlag := func(f *pflag.Flag) {
		if f == nil || bindErr != nil {
			return
		}
		if _, ok := visited[f.Name]; ok {
			return
		}
		visited[f.Name] = struct{}{}
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(configName, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %q to key %q: %w", f.Name, configName, err)
		}
	}

	// Persistent flags only reach Flags() once cobra has parsed the command.
	cmd.Flags().VisitAll(bindFlag)
	cmd.PersistentFlags().VisitAll(bindFlag)
	cmd.InheritedFlags().VisitAll(bindFlag)
	return bindErr
}

func resolveConfigFilePath(cmd *cobra.Command, configFlagValue string) (string, bool, error) {
	if flagChanged(cmd, "config") {
		path := strings.TrimSpace(configFlagValue)
		if path == "" {
			return "", true, md2html.NewConfigError("--config must not be empty", nil)
		}
		return path, true, nil
	}

	if value := strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG")); value != "" {
		return value, true, nil
	}

	candidates := []string{
		filepath.Join(".", "md2html.toml"),
	}
	if configDir := md2html.DefaultConfigDir("md2html"); configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, "config.toml"))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, false, nil
		}
	}

	return "", false, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}
