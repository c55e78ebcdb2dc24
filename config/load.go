package config

import "github.com/caarlos0/env/v11"

func Load() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}
