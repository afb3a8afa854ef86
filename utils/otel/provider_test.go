package otel

import (
	"context"
	"testing"

	"rss-reader/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProvider_Disabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), config.OtelConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
