package utils

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func InitLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	logrus.SetFormatter(customFormatter)
	logrus.SetLevel(level)
	return nil
}

func PrintConfig(v *viper.Viper, configVars ...string) {
	fields := make(logrus.Fields, len(configVars))
	for _, variable := range configVars {
		fields[variable] = v.GetString(variable)
	}
	logrus.WithFields(fields).Debug("action: config | result: success")
}
