package mediaspa_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/mediaspa"
)

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		env   mediaspa.Environment
		valid bool
	}{
		{"Zero-Value", "", false},
		{"Development", mediaspa.Development, true},
		{"Production", mediaspa.Production, true},
		{"Lowercase", "production", false},
		{"Unknown", "QA", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.env.Valid()
			if tc.valid {
				require.Nil(t, err)
				return
			}

			require.ErrorIs(t, err, mediaspa.ErrNotValid)
		})
	}
}

func TestEnvironmentAllowsDevProxy(t *testing.T) {
	require.True(t, mediaspa.Development.AllowsDevProxy())
	require.True(t, mediaspa.Testing.AllowsDevProxy())
	require.False(t, mediaspa.Production.AllowsDevProxy())
}

func TestEnvVarOrEnv(t *testing.T) {
	key := "MEDIASPA_TEST_ENVIRONMENT"

	t.Setenv(key, "")
	require.Equal(t, mediaspa.Development, mediaspa.EnvVarOrEnv(key, mediaspa.Development))

	t.Setenv(key, "staging")
	require.Equal(t, mediaspa.Staging, mediaspa.EnvVarOrEnv(key, mediaspa.Development))

	t.Setenv(key, "nowhere")
	require.Equal(t, mediaspa.Development, mediaspa.EnvVarOrEnv(key, mediaspa.Development))
}

func TestEnvVarOrBool(t *testing.T) {
	key := "MEDIASPA_TEST_BOOL"

	t.Setenv(key, "TRUE")
	require.True(t, mediaspa.EnvVarOrBool(key, false))

	t.Setenv(key, "false")
	require.False(t, mediaspa.EnvVarOrBool(key, true))

	t.Setenv(key, "yes")
	require.True(t, mediaspa.EnvVarOrBool(key, true))
}

func TestEnvVarOrDuration(t *testing.T) {
	key := "MEDIASPA_TEST_DURATION"

	t.Setenv(key, "3s")
	require.Equal(t, 3*time.Second, mediaspa.EnvVarOrDuration(key, time.Second))

	t.Setenv(key, "three seconds")
	require.Equal(t, time.Second, mediaspa.EnvVarOrDuration(key, time.Second))
}

func TestEnvVarOrInt(t *testing.T) {
	key := "MEDIASPA_TEST_INT"

	t.Setenv(key, "8")
	require.Equal(t, 8, mediaspa.EnvVarOrInt(key, 1))

	t.Setenv(key, "eight")
	require.Equal(t, 1, mediaspa.EnvVarOrInt(key, 1))
}

func TestEnvVarOrLogLevel(t *testing.T) {
	key := "MEDIASPA_TEST_LOG_LEVEL"

	t.Setenv(key, "")
	require.Equal(t, slog.LevelInfo, mediaspa.EnvVarOrLogLevel(key, slog.LevelInfo))

	t.Setenv(key, "debug")
	require.Equal(t, slog.LevelDebug, mediaspa.EnvVarOrLogLevel(key, slog.LevelInfo))

	t.Setenv(key, "LOUD")
	require.Equal(t, slog.LevelInfo, mediaspa.EnvVarOrLogLevel(key, slog.LevelInfo))
}

func TestEnvVarOrURL(t *testing.T) {
	key := "MEDIASPA_TEST_URL"

	t.Setenv(key, "")
	require.Nil(t, mediaspa.EnvVarOrURL(key, ""))
	require.Equal(t, "http://localhost:3000", mediaspa.EnvVarOrURL(key, "http://localhost:3000").String())

	t.Setenv(key, "http://113.45.79.44")
	require.Equal(t, "113.45.79.44", mediaspa.EnvVarOrURL(key, "http://localhost:3000").Host)

	t.Setenv(key, "not a url")
	require.Equal(t, "localhost:3000", mediaspa.EnvVarOrURL(key, "http://localhost:3000").Host)
}
