/*
Package router routes requests to the media client and its collaborators.

A [Router] is a thin wrapper around [mux.Router].
A [Route] pairs a path and HTTP method with an [http.HandlerFunc];
any middlewares added to the Route are called in the order they appear,
after those the Router applies on every request.

MountSPA registers everything the single page application needs under its base path:

	GET {base}               entry page
	GET {base}{routePath}    entry page, in history mode
	GET {base}assets/...     built chunks and styles
	GET {base}_routes        route table manifest
	GET {base}_resolve?path= resolution of a single path

MountProxy forwards API calls, e.g. /api/videos, to an upstream origin.
*/
package router
