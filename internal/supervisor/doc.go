// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package supervisor runs the long-lived parts of the MovieSense server under
suture v4.

# Tree

	RootSupervisor ("moviesense")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogService (when catalog.reload_interval > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's decaying failure counter: once
failures exceed FailureThreshold, restarts wait FailureBackoff. Supervisor
events are logged through sutureslog, normally backed by the zerolog bridge
in internal/logging:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logger))
	return tree.Serve(ctx)

Canceling ctx stops every layer; UnstoppedServiceReport names services that
ignored the shutdown timeout.
*/
package supervisor
