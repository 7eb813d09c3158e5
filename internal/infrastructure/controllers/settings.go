package controllers

import (
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rios0rios0/depadvice/internal/domain/entities"
)

const envPrefix = "DEPADVICE"

// newFlagReader binds the command's flags to viper so that every flag can also
// be set through a DEPADVICE_<FLAG> environment variable.
func newFlagReader(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		logger.Warnf("Failed to bind flags: %v", err)
	}
	return v
}

// loadSettings reads the settings file named by --config, or the first one
// found in the default locations. Without a settings file the defaults apply.
func loadSettings(v *viper.Viper) (*entities.Settings, error) {
	cfgPath := v.GetString("config")
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.DefaultSettings(), nil
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}
