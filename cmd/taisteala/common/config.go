package common

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/franciscopereira987/taisteala/pkg/reader"
	"github.com/franciscopereira987/taisteala/pkg/utils"
)

const (
	LogLevel      = "log.level"
	DataURL       = "data.url"
	DataDest      = "data.dest"
	DataTimeout   = "data.timeout"
	DataFetch     = "data.fetch"
	ServerURL     = "server.url"
	QueueRequests = "queue.requests"
	Remote        = "remote"
)

var ConfigVars = []string{
	LogLevel,
	DataURL,
	DataDest,
	DataTimeout,
	DataFetch,
	ServerURL,
	QueueRequests,
	Remote,
}

// flag name -> config key
var flagKeys = map[string]string{
	"dest":   DataDest,
	"fetch":  DataFetch,
	"remote": Remote,
}

type Config struct {
	DataURL       string
	DataDest      string
	Timeout       time.Duration
	Fetch         bool
	ServerURL     string
	RequestsQueue string
	Remote        bool
}

func InitConfig(configPath string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v, err := utils.InitConfig(configPath, ConfigVars...)
	if err != nil {
		return nil, err
	}

	v.SetDefault(LogLevel, "INFO")
	v.SetDefault(DataURL, reader.AirportsDataURL)
	v.SetDefault(DataDest, "data/airports.dat")
	v.SetDefault(DataTimeout, 30*time.Second)
	v.SetDefault(QueueRequests, "journeys")

	if flags == nil {
		return v, nil
	}
	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

func ConfigFrom(v *viper.Viper) Config {
	return Config{
		DataURL:       v.GetString(DataURL),
		DataDest:      v.GetString(DataDest),
		Timeout:       v.GetDuration(DataTimeout),
		Fetch:         v.GetBool(DataFetch),
		ServerURL:     v.GetString(ServerURL),
		RequestsQueue: v.GetString(QueueRequests),
		Remote:        v.GetBool(Remote),
	}
}
