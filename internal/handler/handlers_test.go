package handler

import (
	"testing"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so construction-time tests need nothing more.
func newTestServices() *service.Services {
	return &service.Services{}
}

func httpConfig(address string) config.StructuredConfig {
	return config.StructuredConfig{Server: config.Server{HTTPAddress: address}}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), httpConfig(":5000"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.IsType(t, &Handlers{}, h)
}

// без адреса сервер не поднимается
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := httpConfig(":5000")

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
