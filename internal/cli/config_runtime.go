package cli

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fdkevin0/md2html"
	"github.com/fdkevin0/md2html/internal/configsource"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type runtimeConfig struct {
	App        *md2html.Config
	ConfigFile string
}

func buildRuntimeConfig(cmd *cobra.Command) (*runtimeConfig, error) {
	v, err := configsource.NewViperForCommand(cmd, flagConfigFile)
	if err != nil {
		return nil, err
	}

	values := *md2html.NewDefaultConfig()
	if err := v.Unmarshal(&values, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		trimSpaceDecodeHook(),
	))); err != nil {
		return nil, md2html.NewConfigError("failed to decode configuration", err)
	}

	cfg := &runtimeConfig{
		App:        &values,
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := validateRuntimeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateRuntimeConfig(cfg *runtimeConfig) error {
	if cfg.App.Src == "" {
		return md2html.NewValidationError("invalid or missing --src parameter", nil)
	}
	return nil
}

func trimSpaceDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		value, ok := data.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", data)
		}
		return strings.TrimSpace(value), nil
	}
}
