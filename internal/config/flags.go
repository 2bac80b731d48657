package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// the parsed values are written to. The returned value is only meaningful
// after fs has been parsed, which cobra does before running a command.
//
// Flags:
//
//	--db          database file path
//	--driver      database driver (sqlite3 or sqlite)
//	--pin-cost    bcrypt cost used when setting a PIN
//	--page-size   default number of entries per listing
//	--log-level   log level (debug, info, warn, error)
//	--log-file    log file path
//	-c/--config   json file path with configs
//	--env-file    dotenv file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Storage.DB.DSN, "db", "", "Database file path")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver: sqlite3 or sqlite")
	fs.IntVar(&cfg.App.PinHashCost, "pin-cost", 0, "bcrypt cost used when setting a PIN")
	fs.IntVar(&cfg.App.PageSize, "page-size", 0, "Default number of entries per listing")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.EnvFilePath, "env-file", "", "dotenv file path")

	return cfg
}
