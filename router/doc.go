/*
Package router defines the HTTP routes of the Nateq API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg, clients, screens, groups, archive)

# Endpoints

Every resource Function answers GET and POST on two shapes:

	/{Resource}/{method} - dispatch to the named method
	/{Resource}          - empty method, always code 2

Resource names are case-sensitive: language, location, print, Client,
auth, alert, Group, Screen.

Besides the Functions:

	GET  /ping          - health check, {code:0, data:{}}
	     /channel       - live websocket channel
	POST /api/messages  - companion chat bot

# Handler Initialization

The router builds each Function with its dependencies and wires them all
through one dispatcher, so the method check and the auth gate behave
identically across resources.
*/
package router
