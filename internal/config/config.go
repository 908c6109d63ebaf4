package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Export
	}

	Database struct {
		Path string
	}
	Export struct {
		Path string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("export_path", DefaultExportPath)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Export: Export{
			Path: v.GetString("EXPORT_PATH"),
		},
	}
}
