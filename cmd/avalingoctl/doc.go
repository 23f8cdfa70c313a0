// Package main provides avalingoctl, the Avalingo server CLI.
//
// Avalingo is a multi-tenant e-learning backend combining role-based
// access control with CEFR placement testing.
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/rbac: Permission resolution over the role inheritance graph
//   - pkg/placement: Placement test scoring and level estimation
//   - pkg/bank: Question bank document parsing and loading
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//   - pkg/metrics: Prometheus instrumentation
//
// # Quick Start
//
//	# Run database migrations and seed the built-in roles
//	avalingoctl db migrate
//	avalingoctl db seed
//
//	# Load a question bank
//	avalingoctl bank load ./bank
//
//	# Start the server
//	avalingoctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - AVALINGO_JWT_SECRET: HMAC secret for API tokens
//   - AVALINGO_LOG_LEVEL: Log level (debug, info, warn, error)
//   - AVALINGO_CONFIG_PATH: Configuration directory (default: /etc/avalingo/config)
//   - SENTRY_DSN: Error telemetry endpoint, used when telemetry is enabled
//   - PORT: Server port (default: 8000)
package main
