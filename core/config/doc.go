// Package config provides configuration management for the wardrobe service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, hotel domain, emulator flavour
//   - Feeds: feed source (http or mirror), document locations, timeout and rate limit
//   - Cache: catalog/volatile TTLs and the retry policy
//   - Storage: S3/MinIO bucket holding the feed mirror
//   - Database: optional emulator connection for the clothing registry
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Cache.CatalogTTL)
package config
