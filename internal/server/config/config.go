// Package config builds the server configuration from defaults, an optional
// JSON file, environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"net"
	"net/url"

	"github.com/dmitrijs2005/geoportal/internal/server/auth"
)

// Config holds runtime settings for the geoportal server.
//
// The credential database (DBName) holds the users table; the geometry
// database (GeometryDBName) holds the PostGIS geometries table. Both live on
// the same host and share credentials.
type Config struct {
	EndpointAddrHTTP string `env:"HTTP_ADDR"`
	DBHost           string `env:"DB_HOST"`
	DBPort           string `env:"DB_PORT"`
	DBName           string `env:"DB_NAME"`
	GeometryDBName   string `env:"GEOMETRY_DB_NAME"`
	DBUser           string `env:"DB_USER"`
	DBPass           string `env:"DB_PASS"`
	DBSSLMode        string `env:"DB_SSLMODE"`
	AllowedOrigin    string `env:"CORS_ORIGIN"`
	Debug            bool   `env:"DEBUG"`
	RunMigrations    bool   `env:"RUN_MIGRATIONS"`

	// DBMaxIdleConns is the number of idle connections kept per database.
	// Zero means every request opens and closes its own connection.
	DBMaxIdleConns int `env:"DB_MAX_IDLE_CONNS"`

	// DecoyCost is the bcrypt cost of the hash compared against when a
	// username is unknown. Keep it equal to the cost of the stored hashes.
	DecoyCost int `env:"BCRYPT_DECOY_COST"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8081"
	c.DBHost = "localhost"
	c.DBPort = "5432"
	c.DBName = "users"
	c.GeometryDBName = "geometry"
	c.DBUser = "postgres"
	c.DBPass = "postgres"
	c.DBSSLMode = "disable"
	c.AllowedOrigin = "http://localhost:5173"
	c.Debug = true
	c.RunMigrations = false
	c.DBMaxIdleConns = 0
	c.DecoyCost = auth.DefaultHashCost
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// the environment, then command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// CredentialsDSN is the pgx connection URL of the credential database.
func (c *Config) CredentialsDSN() string {
	return c.dsn(c.DBName)
}

// GeometryDSN is the pgx connection URL of the geometry database.
func (c *Config) GeometryDSN() string {
	return c.dsn(c.GeometryDBName)
}

func (c *Config) dsn(database string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}
