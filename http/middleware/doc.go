/*
The middleware package defines what a middleware is in mediaspa and a set of basic middlewares.

The available middlewares are:
  - CacheControl
  - Compress
  - CORS
  - ForceHTTPS
  - InjectIPAddress
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID

ranger assembles the default chain like so:

	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(httpLogger),
		middleware.ReportPanic(env),
		middleware.ForceHTTPS(env),
		middleware.CORS(origin),
		middleware.Compress(),
	}
*/
package middleware
