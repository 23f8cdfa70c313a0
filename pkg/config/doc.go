// Package config provides configuration management for Avalingo.
//
// This package handles loading and validating Avalingo server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - AVALINGO_JWT_SECRET: Token signing secret
//   - AVALINGO_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
