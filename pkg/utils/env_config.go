package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "taisteala"

var ErrMissingConfig = errors.New("missing required config")

// InitConfig reads configPath, with env vars (TAISTEALA_DATA_DEST for
// "data.dest") taking precedence. A .env file in the working directory is
// loaded into the environment first. A missing config file is not an error.
func InitConfig(configPath string, configVars ...string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("action: load_dotenv | result: skipped | reason: no .env file")
	}

	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, envVar := range configVars {
		if err := v.BindEnv(envVar); err != nil {
			return nil, err
		}
	}

	if configPath == "" {
		return v, nil
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Debugf("action: read_config | result: skipped | path: %s", configPath)
	}
	return v, nil
}

func RequireString(v *viper.Viper, key string) (string, error) {
	value := v.GetString(key)
	if value == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingConfig, key)
	}
	return value, nil
}
