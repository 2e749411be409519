package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/myauthapp/internal/flagx"
	"github.com/dmitrijs2005/myauthapp/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	DatabasePath     *string         `json:"database_path"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
	StorageTimeout   *timex.Duration `json:"storage_timeout"`
	PersistQueueSize *int            `json:"persist_queue_size"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c or -config flag. Without the flag it does nothing. Read or unmarshal
// errors panic; the caller should recover if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.StorageTimeout != nil {
		cfg.StorageTimeout = jc.StorageTimeout.Duration
	}
	if jc.PersistQueueSize != nil {
		cfg.PersistQueueSize = *jc.PersistQueueSize
	}
}
