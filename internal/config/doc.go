// Package config loads and saves viewforge.json, the project configuration
// consumed by the viewforge CLI and the dev server.
package config
