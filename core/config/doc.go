// Package config provides type-safe environment variable loading with
// per-type caching. A .env file, if present, is loaded once on first use;
// parsing is handled by the caarlos0/env library.
//
// Basic usage:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVEDIR_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded only once per process; subsequent Load
// calls for the same type return the cached value, so every component sees
// the same configuration regardless of load order.
package config
