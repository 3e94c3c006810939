// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package supervisor provides process supervision for creatorlens using suture v4.

The long-running parts of the server are grouped into three layers:

	RootSupervisor ("creatorlens")
	├── DataSupervisor ("data-layer")
	│   └── RefreshService (if REFRESH_ENABLED)
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventListenerService (if EVENTS_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's decaying failure counter; once
FailureThreshold is exceeded the supervisor waits FailureBackoff before the
next restart. Supervisor events are logged through sutureslog, which main
feeds with the zerolog-backed slog handler from the logging package.

DuckDB, the snapshot store and the insights engine are not services. They are
opened before the tree starts and closed after it stops.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewRefreshService(engine, db, refreshCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

If a service ignores cancellation, UnstoppedServiceReport names it.
*/
package supervisor
