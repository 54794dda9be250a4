package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sonarauth/internal/flagx"
)

// JsonConfig is the DTO for reading JSON configuration files; values are
// copied into the runtime Config after unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	KeyFilePath        string `json:"key_file_path"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into cfg. Without the flag nothing is loaded; an
// unreadable or invalid file panics, as a half-applied config is worse
// than a crash at startup.
func parseJson(cfg *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
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

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.KeyFilePath = jc.KeyFilePath
}
