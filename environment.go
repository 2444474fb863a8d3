package mediaspa

import (
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// An Environment is a different context in which a mediaspa host operates.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

var _ Enumerable = Development

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Development, Production, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsTesting() bool     { return e == Testing }

// AllowsDevProxy asserts whether the Environment may forward API requests
// through the development proxy without being forced to.
func (e Environment) AllowsDevProxy() bool {
	switch e {
	case Development, Staging, Testing:
		return true
	default:
		return false
	}
}

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// EnvVarOrDuration gets the environment variable for the provided key,
// parses it into a [time.Duration], or, returns
// the default [time.Duration].
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return d
}

// EnvVarOrEnum gets the environment variable for the provided key,
// casts it into E with cast,
// or returns def if the value is empty or cast produces an invalid E.
func EnvVarOrEnum[E Enumerable](key string, def E, cast func(string) E) E {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	e := cast(val)
	if err := e.Valid(); err != nil {
		return def
	}

	return e
}

// EnvVarOrEnv gets the environment variable for the provided key,
// casts it into an [Environment],
// or returns the provided default [Environment] if key is not a valid [Environment].
func EnvVarOrEnv(key string, def Environment) Environment {
	return EnvVarOrEnum(key, def, func(s string) Environment {
		return Environment(strings.ToUpper(s))
	})
}

// EnvVarOrInt gets the environment variable for the provided key,
// creates an int from the retrieved value,
// or returns the provided default
// if the value is not a valid int.
func EnvVarOrInt(key string, def int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return val
}

// EnvVarOrLogLevel gets the environment variable for the provided key,
// creates a [log/slog.Level] from the retrieved value,
// or returns the provided default [log/slog.Level].
func EnvVarOrLogLevel(key string, def slog.Level) slog.Level {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(val)); err != nil {
		return def
	}

	return lvl
}

// EnvVarOrString gets the environment variable for the provided key or the provided default string.
func EnvVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}

// EnvVarOrURL gets the environment variable for the provided key or the provided default *url.URL.
//
// If neither parse as an absolute URL, EnvVarOrURL returns nil.
func EnvVarOrURL(key, def string) *url.URL {
	if val := os.Getenv(key); val != "" {
		if u, err := url.ParseRequestURI(val); err == nil && u.Host != "" {
			return u
		}
	}

	if def == "" {
		return nil
	}

	u, err := url.ParseRequestURI(def)
	if err != nil || u.Host == "" {
		return nil
	}

	return u
}
