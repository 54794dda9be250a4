package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sonarauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line
// flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN ("" selects the in-memory registry)
//	-r string   Redis address ("" selects the in-memory ledger)
//	-s string   credential HMAC secret key
//	-l int      challenge TTL, seconds
//	-t int      credential validity, minutes
//
// The args are filtered through flagx.FilterArgs first, so flags owned
// by other components do not trip this flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for the challenge ledger")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	challengeTTL := fs.Int("l", int(config.ChallengeTTL.Seconds()), "challenge_ttl (in seconds)")
	credentialValidity := fs.Int("t", int(config.CredentialValidityDuration.Minutes()), "credential_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ChallengeTTL = time.Duration(*challengeTTL) * time.Second
	config.CredentialValidityDuration = time.Duration(*credentialValidity) * time.Minute
}
