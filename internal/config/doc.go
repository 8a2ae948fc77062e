// Package config loads the wirecheck configuration.
//
// Configuration is read from config.yaml in a single directory, by default
// ~/.config/wirecheck; commands accept --config-path to point elsewhere. A
// missing file means defaults. Values from the file override the defaults
// field by field and the result is validated before use.
//
//	validation:
//	  enabled: true
//	  output: table        # text, json, yaml or table
//	  saveReports: true
//	  maxReports: 20
//	server:
//	  host: localhost
//	  port: 8095
//	  notifySystemd: false
//	  shutdownTimeout: 10s
//	logging:
//	  level: info
//
// Load failures are returned as ConfigurationError, whose DetailedError
// lists the file, the line when known, and suggestions.
//
// Storage keeps saved validation reports in <config>/reports/<runID>.yaml.
// Watcher follows config.yaml while the server runs.
package config
