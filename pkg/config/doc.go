// Package config loads environment variables, optionally from .env files,
// into tagged structs using caarlos0/env.
//
//	type Config struct {
//		Port int `env:"PORT" envDefault:"3001"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Values already present in the process environment take precedence over
// .env files, so deployment settings are never overridden by a stray file.
package config
