package config

import (
	"flag"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultCodepage    = "windows-1252"
	DefaultMaxFileSize = 64 << 20
	DefaultLogLevel    = "info"
	DevelDeployment    = "devel"
)

var portCmd = flag.Int("port", 3000, "HTTP server port")

type Config struct {
	ServerHost       string
	ServerPort       int
	ZmqApiPort       int
	ZmqEventPort     int
	ZmqEventRelay    string
	Codepage         string
	StrictDuplicates bool
	MaxFileSize      int64
	LogLevel         string
	DeploymentMode   string
}

func LoadConfig() Config {
	godotenv.Load(".env")
	return Config{
		ServerHost:       os.Getenv("SERVER_HOST"),
		ServerPort:       *portCmd,
		ZmqApiPort:       intEnv("ZMQ_API_PORT", 0),
		ZmqEventPort:     intEnv("ZMQ_EVENT_PORT", 0),
		ZmqEventRelay:    os.Getenv("ZMQ_EVENT_RELAY"),
		Codepage:         stringEnv("NK2_CODEPAGE", DefaultCodepage),
		StrictDuplicates: boolEnv("NK2_STRICT_DUPLICATES", false),
		MaxFileSize:      int64Env("NK2_MAX_FILE_SIZE", DefaultMaxFileSize),
		LogLevel:         stringEnv("LOG_LEVEL", DefaultLogLevel),
		DeploymentMode:   os.Getenv("DEPLOYMENT_MODE"),
	}
}

func (c Config) IsDevel() bool {
	return strings.EqualFold(c.DeploymentMode, DevelDeployment)
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func int64Env(key string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func boolEnv(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
