// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

/*
Package services provides suture.Service wrappers for Moodtune components.

Each wrapper translates a component's lifecycle into suture's
Serve(ctx) error contract and implements fmt.Stringer so supervisor
events name the service.

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - TokenRefreshService: prewarms and periodically refreshes the Spotify token
*/
package services
