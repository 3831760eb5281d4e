/*
Package registry holds the in-memory principal and group stores.

# Principals

A Principal is either a Client (pilgrim/staff account, id namespaced as
"username"+name) or a Screen (information screen, raw id). Handlers decide
capabilities by switching on the concrete type.

Registration semantics differ deliberately between the two: registering a
client under a taken username replaces the previous entry, while registering
a screen under a taken id fails before the screen is even constructed.

# Lifetime

All registries are created at process start and passed into the handlers
that need them. Nothing is evicted and nothing is reloaded from the archive:
a restart starts from empty registries no matter what was persisted.
*/
package registry
