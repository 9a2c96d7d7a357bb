// Package config provides configuration loading, merging, and validation
// facilities for the account switcher client and the account directory
// server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the directory server and
// [GetClientConfig] for the interactive client.
package config
