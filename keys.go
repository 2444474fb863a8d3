package mediaspa

import "context"

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ResolutionKey stashes the route resolution an HTTP request matched.
	ResolutionKey Key = "ResolutionKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "mediaspa context key: " + string(k)
}

// RequestIDFromContext retrieves the request ID set in ctx.
// It returns an empty string if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// IPAddrFromContext retrieves the IP address set in ctx.
// It returns an empty string if none is set.
func IPAddrFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(IpAddrKey).(string)
	return ip
}
