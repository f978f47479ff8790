// Package config provides configuration management for the AudioMass server.
//
// It utilizes Viper for combining defaults declared in struct tags, an optional .env file,
// AUDIOMASS_-prefixed environment variables and the command-line flags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: port (--port), served directory, index file, directory listings
//   - Preload: the audio URL handed to the editor (--url)
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials used to presign s3:// preload URLs
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
