package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/geoportal/internal/flagx"
)

// parseFlags overlays values from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":8081")
//	-H string   database host
//	-P string   database port
//	-n string   credential database name
//	-g string   geometry database name
//	-u string   database user
//	-p string   database password
//	-s string   database sslmode
//	-o string   allowed CORS origin
//	-debug      debug mode (gin debug output, debug logging)
//	-m          run embedded migrations on startup
//	-i int      idle connections kept per database
//	-b int      bcrypt cost of the unknown-user decoy hash
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-H", "-P", "-n", "-g", "-u", "-p", "-s", "-o", "-debug", "-m", "-i", "-b",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DBHost, "H", config.DBHost, "database host")
	fs.StringVar(&config.DBPort, "P", config.DBPort, "database port")
	fs.StringVar(&config.DBName, "n", config.DBName, "credential database name")
	fs.StringVar(&config.GeometryDBName, "g", config.GeometryDBName, "geometry database name")
	fs.StringVar(&config.DBUser, "u", config.DBUser, "database user")
	fs.StringVar(&config.DBPass, "p", config.DBPass, "database password")
	fs.StringVar(&config.DBSSLMode, "s", config.DBSSLMode, "database sslmode")
	fs.StringVar(&config.AllowedOrigin, "o", config.AllowedOrigin, "allowed CORS origin")
	fs.BoolVar(&config.Debug, "debug", config.Debug, "debug mode")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "run migrations on startup")
	fs.IntVar(&config.DBMaxIdleConns, "i", config.DBMaxIdleConns, "idle connections per database")
	fs.IntVar(&config.DecoyCost, "b", config.DecoyCost, "bcrypt cost of the unknown-user decoy")

	return fs.Parse(args)
}
