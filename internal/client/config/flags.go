package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/sonarauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-k string   path of the encrypted key file
//
// The args are filtered through flagx.FilterArgs first, so flags owned
// by other components do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.KeyFilePath, "k", cfg.KeyFilePath, "path of the encrypted key file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
