package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/geoportal/internal/flagx"
)

// JsonConfig mirrors Config for JSON files. Pointer fields distinguish an
// explicit false/0 from an absent key; empty strings are treated as absent.
type JsonConfig struct {
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	DBHost           string `json:"db_host"`
	DBPort           string `json:"db_port"`
	DBName           string `json:"db_name"`
	GeometryDBName   string `json:"geometry_db_name"`
	DBUser           string `json:"db_user"`
	DBPass           string `json:"db_pass"`
	DBSSLMode        string `json:"db_sslmode"`
	AllowedOrigin    string `json:"allowed_origin"`
	Debug            *bool  `json:"debug"`
	RunMigrations    *bool  `json:"run_migrations"`
	DBMaxIdleConns   *int   `json:"db_max_idle_conns"`
	DecoyCost        *int   `json:"decoy_cost"`
}

// parseJSON overlays values from the file given by -c/-config. Nothing
// happens when no file was given.
func parseJSON(config *Config) error {
	path := flagx.ConfigPath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DBHost, c.DBHost)
	setString(&config.DBPort, c.DBPort)
	setString(&config.DBName, c.DBName)
	setString(&config.GeometryDBName, c.GeometryDBName)
	setString(&config.DBUser, c.DBUser)
	setString(&config.DBPass, c.DBPass)
	setString(&config.DBSSLMode, c.DBSSLMode)
	setString(&config.AllowedOrigin, c.AllowedOrigin)
	if c.Debug != nil {
		config.Debug = *c.Debug
	}
	if c.RunMigrations != nil {
		config.RunMigrations = *c.RunMigrations
	}
	if c.DBMaxIdleConns != nil {
		config.DBMaxIdleConns = *c.DBMaxIdleConns
	}
	if c.DecoyCost != nil {
		config.DecoyCost = *c.DecoyCost
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
