package config

import "time"

// applyDefaults fills in zero values after file and environment loading.
func applyDefaults(cfg *Config) {
	if cfg.Server.IP == "" {
		cfg.Server.IP = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "server.log"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/portfolio.db"
	}
	if cfg.Auth.TTL == 0 {
		cfg.Auth.TTL = Duration(24 * time.Hour)
	}
	if cfg.Auth.Admin.Username == "" {
		cfg.Auth.Admin.Username = "admin"
	}
	if cfg.Auth.Admin.Email == "" {
		cfg.Auth.Admin.Email = "admin@localhost"
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 587
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	if cfg.Mail.To == "" {
		cfg.Mail.To = cfg.Mail.Username
	}
	if len(cfg.Web.AllowOrigins) == 0 {
		cfg.Web.AllowOrigins = []string{"*"}
	}
}
