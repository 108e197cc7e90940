package zaplog_test

import (
	"testing"

	"github.com/AndrewDonelson/codecs"
	"github.com/AndrewDonelson/codecs/zaplog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RoutesToZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zaplog.New(zap.New(core))

	l.Debug("codec module not found", "path", "encodings.demo")
	l.Info("codec registered", "name", "demo")
	l.Warn("active code page query failed", "error", "nope")
	l.Error("boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "codec module not found", entries[0].Message)
	assert.Equal(t, "encodings.demo", entries[0].ContextMap()["path"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLogger_SatisfiesCodecsLogger(t *testing.T) {
	var _ codecs.Logger = zaplog.New(zap.NewNop())
}

func TestLogger_UsedByRegistry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := codecs.NewRegistry(codecs.Config{
		Loader: codecs.NewNamespace(),
		Logger: zaplog.New(zap.New(core)),
	})

	_, err := reg.Lookup("no-such-codec")
	assert.ErrorIs(t, err, codecs.ErrUnknownEncoding)
	assert.NotZero(t, logs.Len(), "failed module loads are logged at debug")
}
