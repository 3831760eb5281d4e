/*
Package handlers contains the resource Functions exposed by the API.

Each Function is a struct implementing dispatch.Function, created via a
constructor that accepts its registries:

	language := handlers.NewLanguageFunction()
	client := handlers.NewClientFunction(clients, archive)

# Resources

  - language: select/recommand tallies (no auth)
  - location: zone activity tallies (no auth)
  - print: print use/view tallies per delivery type (no auth)
  - Client: client registration (auth-gated)
  - auth: client and screen login (no auth)
  - alert: zone admission stub (no auth)
  - Group: group creation, leader must be a client principal (auth-gated)
  - Screen: screen registration (auth-gated)

Resource names are case-sensitive and appear in routes exactly as declared.

Registration writes to the archive are fire-and-forget; the response never
waits on or reflects the document store.
*/
package handlers
