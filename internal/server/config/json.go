package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sonarauth/internal/flagx"
	"github.com/dmitrijs2005/sonarauth/internal/timex"
)

// JsonConfig is the DTO for reading JSON configuration files. Interval
// fields use timex.Duration so both "60s" strings and integer
// nanoseconds parse; values are copied into the runtime Config after
// unmarshalling.
type JsonConfig struct {
	EndpointAddrGRPC           string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                string         `json:"database_dsn"`
	RedisAddr                  string         `json:"redis_addr"`
	SecretKey                  string         `json:"secret_key"`
	ChallengeTTL               timex.Duration `json:"challenge_ttl"`
	CredentialValidityDuration timex.Duration `json:"credential_validity_duration"`
	SweepInterval              timex.Duration `json:"sweep_interval"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into config. Without the flag nothing is loaded; an
// unreadable or invalid file panics, as a half-applied config is worse
// than a crash at startup.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisAddr = c.RedisAddr
	config.SecretKey = c.SecretKey
	config.ChallengeTTL = c.ChallengeTTL.Duration
	config.CredentialValidityDuration = c.CredentialValidityDuration.Duration
	config.SweepInterval = c.SweepInterval.Duration
}
