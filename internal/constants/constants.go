// Package constants defines application-wide constants and configuration values.
package constants

import (
	"time"
)

// Identity information for the application.
const (
	// GithubOwner is the owner of the GitHub repository.
	GithubOwner = "jjankovic"

	// ProgramIdentifier is the identifier for the application.
	ProgramIdentifier = "site"

	// SiteOwnerName is appended to every page title.
	SiteOwnerName = "Jones Jankovic"
)

// DefaultListenPort is the default port number for the web server.
const DefaultListenPort = 8080

// Server timeout related constants.
const (
	// DefaultServerReadTimeout is the maximum duration for reading the entire request.
	DefaultServerReadTimeout = 15 * time.Second

	// DefaultServerWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultServerWriteTimeout = 15 * time.Second

	// DefaultServerIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultServerIdleTimeout = 60 * time.Second

	// DefaultServerShutdownGracePeriod is the duration to wait for server shutdown.
	DefaultServerShutdownGracePeriod = 60 * time.Second

	// DefaultServerTimeout is the overall timeout for server operations.
	DefaultServerTimeout = 60 * time.Second

	// DefaultServerRequestSizeLimit is the maximum size of a request.
	DefaultServerRequestSizeLimit = 1024 * 1024 // 1MB
)

// DefaultHTTPClientTimeout is the timeout for outbound icon fetches.
const DefaultHTTPClientTimeout = 10 * time.Second

// Favicon related constants.
const (
	// DefaultFaviconWorkers is the number of icons cropped concurrently by the CLI.
	DefaultFaviconWorkers = 4

	// MaxFaviconSourceBytes caps how much of a remote icon is read.
	MaxFaviconSourceBytes = 4 * 1024 * 1024
)

// HTTP paths.
const (
	// PingPath is the endpoint for health check pings.
	PingPath = "/ping"

	// FaviconPath serves the source icon.
	FaviconPath = "/favicon.ico"

	// RoundFaviconPath serves the circular icon.
	RoundFaviconPath = "/favicon-round.png"
)
