package logger

import (
	"dialysis-portal-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, levelFor("debug"))
	assert.Equal(t, zap.WarnLevel, levelFor("warn"))
	assert.Equal(t, zap.ErrorLevel, levelFor("error"))
	assert.Equal(t, zap.InfoLevel, levelFor("verbose"))
}

func TestOutputsFor(t *testing.T) {
	cfg := config.Logger{OutputFileName: "app.log", OutputErrorFileName: "app_error.log"}

	out, errOut := outputsFor("production", cfg)
	assert.Equal(t, []string{"app.log"}, out)
	assert.Equal(t, []string{"stderr", "app_error.log"}, errOut)

	out, errOut = outputsFor("local", cfg)
	assert.Equal(t, []string{"stdout"}, out)
	assert.Equal(t, []string{"stderr"}, errOut)
}

func TestNewZapLogger(t *testing.T) {
	log := NewZapLogger(
		&config.DriverConfig{Logger: config.Logger{Level: "debug"}},
		&config.InternalConfig{App: config.App{Env: "development", Version: "v1"}},
	)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}
