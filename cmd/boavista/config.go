package main

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// config holds the connection settings shared by the commands.
type config struct {
	Code       string // the member code sent in field 05
	Password   string // the password sent in field 06
	Production bool   // use the production environment
	BaseURL    string // overrides the environment endpoint when set
	Insecure   bool   // skip TLS certificate verification
}

func envWithDefault(env string, defaultValue string) string {
	val, set := os.LookupEnv(env)

	if !set {
		logrus.Debugf("environment variable not set: [%s] using default value [%s]", env, defaultValue)
		return defaultValue
	}

	return val
}

func envToBoolean(env string, defaultValue bool) bool {
	value := envWithDefault(env, strconv.FormatBool(defaultValue))
	b, err := strconv.ParseBool(value)
	if err != nil {
		logrus.Warnf("environment variable [%s] is not a boolean: [%s] using default value [%t]", env, value, defaultValue)
		return defaultValue
	}
	return b
}

// loadConfig reads the connection settings from the environment. Flags
// registered on top of it take precedence.
func loadConfig() config {
	var cfg config

	cfg.Code = envWithDefault("BOAVISTA_CODE", "")
	cfg.Password = envWithDefault("BOAVISTA_PASSWORD", "")
	cfg.Production = envToBoolean("BOAVISTA_PRODUCTION", false)
	cfg.BaseURL = envWithDefault("BOAVISTA_BASE_URL", "")
	cfg.Insecure = envToBoolean("BOAVISTA_INSECURE", false)

	return cfg
}

func (cfg config) log() {
	password := ""
	if cfg.Password != "" {
		password = "********"
	}
	logrus.WithFields(logrus.Fields{
		"code":       cfg.Code,
		"password":   password,
		"production": cfg.Production,
		"base_url":   cfg.BaseURL,
		"insecure":   cfg.Insecure,
	}).Debug("configuration")
}
