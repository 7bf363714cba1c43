// Package config provides configuration loading, merging, and validation
// facilities for expnse-server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The storage backend
// (hosted Postgres vs. local SQLite) is selected here exactly once, at
// process start; no code path branches on the backend afterwards.
package config
