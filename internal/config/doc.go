// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources; for every field the first
// source that sets it wins:
//  1. Command-line flags
//  2. Environment variables, optionally pre-loaded from a dotenv file
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]; flags are registered with
// [BindFlags].
package config
