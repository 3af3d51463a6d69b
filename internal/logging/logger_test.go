package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	defer Logger.SetLevel(logrus.InfoLevel)
	defer Logger.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "rua.log")
	require.NoError(t, Configure("debug", path))
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	Logger.Debug("written to file")
	b, e := os.ReadFile(path)
	require.NoError(t, e)
	assert.Contains(t, string(b), "written to file")

	logFile.Close()
	logFile = nil
}

func TestConfigureInvalidLevel(t *testing.T) {
	assert.Error(t, Configure("chatty", ""))
}
