package config

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hubtoken/rwa-ledger/common"
	rwaconfig "github.com/hubtoken/rwa-ledger/modules/rwa/config"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
	"github.com/hubtoken/rwa-ledger/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "text",
		},
		Network: common.NetworkMainnet,
		HTTPServer: HTTPServer{
			Port: 8080,
		},
	}
)

type Config struct {
	Logger     logger.Config    `mapstructure:"logger"`
	Network    common.Network   `mapstructure:"network"`
	HTTPServer HTTPServer       `mapstructure:"http_server"`
	Modules    Modules          `mapstructure:"modules"`
}

type HTTPServer struct {
	Port   int                  `mapstructure:"port"`
	Logger requestlogger.Config `mapstructure:"logger"`
}

type Modules struct {
	RWA rwaconfig.Config `mapstructure:"rwa"`
}

// BindPFlag binds a command-line flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Failed to bind flag to configuration", slogx.String("key", key), slogx.Error(err))
	}
}

// Parse loads the configuration from the given file (or ./config.yaml if
// empty), environment variables and bound flags. Subsequent calls return
// the already-parsed configuration.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slogx.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
	})

	return *config
}

// Load returns the parsed configuration. Parse must have been called first;
// otherwise defaults are returned.
func Load() Config {
	return Parse("")
}
