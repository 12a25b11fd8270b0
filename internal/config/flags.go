package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (sqlite file path or PostgreSQL connection string)
//	-driver database driver name ("sqlite3" or "pgx")
//	-g generated-passwords side file path
//	-c/-config json file path with configs
func ParseFlags() *VaultConfig {
	var databaseDSN string
	var databaseDriver string
	var generatedPasswordsPath string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3 or pgx)")
	flag.StringVar(&generatedPasswordsPath, "g", "", "Generated passwords file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &VaultConfig{
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				GeneratedPasswordsPath: generatedPasswordsPath,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
