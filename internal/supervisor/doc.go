// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

// Package supervisor provides process supervision for Moodtune using suture v4.
//
// Long-running services are organized into an Erlang-style supervisor tree
// with automatic restart and failure backoff:
//
//	RootSupervisor ("moodtune")
//	├── UpstreamSupervisor ("upstream-layer")
//	│   └── TokenRefreshService (optional Spotify token prewarming)
//	└── APISupervisor ("api-layer")
//	    └── HTTPServerService
//
// A token refresh that keeps failing restarts inside its own layer and never
// takes the HTTP server with it; requests keep being answered from the
// fallback generator.
//
// # Usage
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	if err != nil {
//	    return err
//	}
//	tree.AddUpstreamService(services.NewTokenRefreshService(gateway, refreshCfg, logger))
//	tree.AddAPIService(services.NewHTTPServerService(srv, addr, 0, logger))
//	errCh := tree.ServeBackground(ctx)
//
// # Events
//
// Supervisor events (service panics, terminations, backoff) are logged via
// sutureslog through the slog bridge in internal/logging, so they share the
// zerolog output of the rest of the process.
//
// # Shutdown
//
// Cancelling the context passed to Serve stops every service. Services that
// do not return within TreeConfig.ShutdownTimeout are listed by
// UnstoppedServiceReport.
package supervisor
