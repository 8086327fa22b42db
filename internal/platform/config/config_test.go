package config

import (
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Arrange
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("ZMQ_API_PORT", "5555")
	t.Setenv("ZMQ_EVENT_PORT", "5556")
	t.Setenv("NK2_CODEPAGE", "iso-8859-2")
	t.Setenv("NK2_STRICT_DUPLICATES", "true")
	t.Setenv("NK2_MAX_FILE_SIZE", "1024")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEPLOYMENT_MODE", "DEVEL")

	// Act
	cfg := LoadConfig()

	// Assert
	if cfg.ServerHost != "127.0.0.1" {
		t.Errorf("expected ServerHost '127.0.0.1', got '%s'", cfg.ServerHost)
	}
	if cfg.ServerPort != 3000 {
		t.Errorf("expected ServerPort 3000, got %d", cfg.ServerPort)
	}
	if cfg.ZmqApiPort != 5555 || cfg.ZmqEventPort != 5556 {
		t.Errorf("unexpected zmq ports %d, %d", cfg.ZmqApiPort, cfg.ZmqEventPort)
	}
	if cfg.Codepage != "iso-8859-2" {
		t.Errorf("expected Codepage 'iso-8859-2', got '%s'", cfg.Codepage)
	}
	if !cfg.StrictDuplicates {
		t.Errorf("expected StrictDuplicates")
	}
	if cfg.MaxFileSize != 1024 {
		t.Errorf("expected MaxFileSize 1024, got %d", cfg.MaxFileSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel 'debug', got '%s'", cfg.LogLevel)
	}
	if !cfg.IsDevel() {
		t.Errorf("expected devel deployment")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_HOST", "ZMQ_API_PORT", "ZMQ_EVENT_PORT", "NK2_CODEPAGE",
		"NK2_STRICT_DUPLICATES", "LOG_LEVEL", "DEPLOYMENT_MODE"} {
		t.Setenv(key, "")
	}
	t.Setenv("NK2_MAX_FILE_SIZE", "-5")

	cfg := LoadConfig()

	if cfg.ZmqApiPort != 0 || cfg.ZmqEventPort != 0 {
		t.Errorf("zmq endpoints should be disabled by default")
	}
	if cfg.Codepage != DefaultCodepage {
		t.Errorf("expected default codepage, got '%s'", cfg.Codepage)
	}
	if cfg.StrictDuplicates {
		t.Errorf("strict duplicates should be off by default")
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("expected default MaxFileSize, got %d", cfg.MaxFileSize)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected default log level, got '%s'", cfg.LogLevel)
	}
	if cfg.IsDevel() {
		t.Errorf("unexpected devel deployment")
	}
}
