// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

Built with Go 1.22+ method and path-parameter routing:

	GET    /                     Liveness text
	GET    /health               Health check ("OK")
	POST   /submit               Record a new reading
	GET    /readings/{userId}    Recent history, newest first, ≤10
	GET    /stats/{userId}       7-day averages
	DELETE /readings/{id}        Delete a reading

# Construction

	handler := router.NewRouter(st, notifier, cfg)

The store and notifier are injected; every domain route is wrapped with
request logging and the whole mux sits behind the CORS origin allow-list,
so cross-origin callers are filtered before routing.
*/
package router
