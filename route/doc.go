/*
Package route defines the route table of the media application and resolves paths against it.

A [Table] is built once, at start up, from an ordered list of [Route] definitions.
Building a Table validates the whole configuration:
duplicate paths or names, redirects pointing nowhere or around in a circle,
and a root path that resolves to nothing all fail fast with an error wrapping
[github.com/xy-planning-network/mediaspa.ErrBadConfig].
Once built, a Table never changes, so it is safe to share among goroutines.

# Resolving

[*Table.Resolve] matches a path exactly, as a literal string, and returns a [Resolution]:

  - [Matched]: the path names a route with a view
  - [Redirected]: the path names a redirect; the Resolution carries the final target path
    and the match found there
  - [NotFound]: nothing matched

Resolving never errors.

# Layouts

A Route with Children wraps them in its View.
Child paths starting with "/" are absolute; others are joined to the parent's path.
A child sharing its parent's path takes precedence over the parent.
A [Match] lists the layout views around it, outermost first, in Layouts.

# Views

A [View] is only a reference. Turning it into something renderable is the job of a [ViewLoader].
[FSLoader] finds the chunk a bundler emitted for the view in an [io/fs.FS].

# Configuration

[Parse] and [Load] decode a TOML document into a [Config]:

	history = "hash"
	strict = true

	[[routes]]
	path = "/"
	view = "layout/index"

	  [[routes.children]]
	  path = "/"
	  redirect = "/video"

	  [[routes.children]]
	  path = "/video"
	  name = "video"
	  view = "views/video/index"
	  meta = { title = "视频" }
*/
package route
