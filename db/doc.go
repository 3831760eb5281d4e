/*
Package db is the archive collaborator: a write-only document store for
Member and Group records.

The archive is deliberately decoupled from the in-memory registries. Every
write happens on its own goroutine after the in-memory mutation has already
succeeded; a failed write is logged and otherwise ignored, and the server
never reads the archive back. Restarting the process starts from empty
registries regardless of what was archived.

The driver is chosen by configuration: sqlite (modernc.org/sqlite) for
local runs and tests, postgres (lib/pq) for deployments.
*/
package db
