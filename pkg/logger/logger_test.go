package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

// Caso 1: el nivel configurado se respeta.
func TestNew_NivelConfigurado(t *testing.T) {
	log := logger.New("production", "warn")
	require.NotNil(t, log)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

// Caso 2: un nivel no reconocido cae en info, no en pánico ni en silencio.
func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	log := logger.New("production", "verboso")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

// Caso 3: el modo development también produce un logger usable.
func TestNew_Development(t *testing.T) {
	log := logger.New("development", "debug")
	require.NotNil(t, log)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}
