// Package config provides configuration management for menu-manager.
//
// It loads an optional .env file with godotenv and then resolves every setting through
// Viper, which reads environment variables such as DATABASE_DRIVER or SERVER_API_KEY.
// Defaults come from the `default` struct tags of each section and are registered by
// reflection, so adding a field to a section config is enough to make it configurable.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, request body limit
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials, snapshot bucket and prefix
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
