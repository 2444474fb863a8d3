/*
Package ranger initializes and manages a mediaspa app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New], optionally passing [RangerOption]s.

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000)
and serves the client under [DefaultBasePath] (/app/).

Upon calling [*Ranger.Guide], the client, its route manifest and resolver,
and, if configured, the development proxy are active.
Stop that web server with [*Ranger.Shutdown], [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a mediaspa app through environment variables
and by passing [RangerOption]s to [New], which take precedence.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: a short title for the application, shown in page titles; default: mediaspa
  - ASSETS_URL: the base URL the application serves client-side assets over
  - BASE_PATH: the path the client is served under; default: /app/
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CORS_ORIGIN: an origin allowed to make cross-origin requests
  - DIST_DIR: a directory holding the built client; default: the client embedded in the binary
  - ENVIRONMENT: the environment the application is running in; cf. [mediaspa.Environment]
  - HISTORY_MODE: "hash" or "history"; overrides the route table document
  - HOST: the host the application is running on; default: localhost
  - LOG_JSON: whether to write request logs as JSON in development; default: false
  - LOG_LEVEL: the level at which to begin logging; default: INFO
  - PORT: the port the application should listen on; default: :3000
  - PROXY_FORCE: whether to run the development proxy in production; default: false
  - PROXY_PREFIX: the path prefix forwarded to PROXY_TARGET; default: /api
  - PROXY_TARGET: the origin API calls are forwarded to; without it, no proxy runs
  - ROUTES_FILE: a TOML route table document; default: the table embedded in the binary
  - SENTRY_DSN: the DSN errors are reported to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
