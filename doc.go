/*
Package main provides the entry point for the Nateq API server.

Nateq is the registration and coordination backend for a pilgrimage
logistics event: clients and screens register, authenticate with bearer
tokens, and exchange requests through a uniform {code, data} envelope.

# Starting the Server

The server runs with defaults out of the box:

	go run main.go

Or with flags:

	go run main.go -p 5000 -d "file:archive.db" -t sqlite

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): Archive connection string (empty disables the archive)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - TOKEN_SECRET (-secret): Token signing secret
  - DEFAULT_LANGUAGE: Initial screen language (default: ar)
  - ZONES: Comma-separated zone names for location tracking

A .env file in the working directory is loaded when present.

# Architecture

The server uses a Function-based architecture with dependency injection:

  - handlers: resource Functions (language, location, print, Client, auth, alert, Group, Screen)
  - dispatch: uniform method routing, auth gate, required-field contract
  - envelope: the {code, data} response body
  - registry: in-memory principals (clients, screens) and groups
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS and logging
  - channel: live websocket push channel
  - bot: companion chat bot
  - auth: token signing and verification
  - db: optional archive of registration documents
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
