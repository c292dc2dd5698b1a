// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Request Logging

WithLogging wraps a handler with slog start/complete logging, including
the client IP and request duration:

	mux.HandleFunc("POST /submit", middleware.WithLogging(h.Submit))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
	middleware.ParseJSONBody(r, &req)

ErrorResponse wraps the message in models.ErrorResponse with the standard
status text.

# CORS

CORS enforces an explicit origin allow-list at the edge:

	handler := middleware.CORS(cfg.AllowedOrigins)(mux)

Allowed origins are echoed back with GET, POST, DELETE methods and the
Content-Type header; other origins get no CORS headers (the browser
rejects the response) and their preflights are refused. Requests without
an Origin header pass through untouched.

# Client IP

GetClientIP resolves the caller address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr.
*/
package middleware
