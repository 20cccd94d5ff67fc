package logx

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("CLIENT", "GET ", "/blocks/height")
	Warn("CLIENT", "slow")
	assert.Contains(t, buf.String(), "[INFO][CLIENT]")
	assert.Contains(t, buf.String(), "GET /blocks/height")
	assert.Contains(t, buf.String(), "[WARN][CLIENT]")

	buf.Reset()
	SetDebug(false)
	Debug("CLIENT", "hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	Debug("CLIENT", "shown")
	assert.Contains(t, buf.String(), "[DEBUG][CLIENT]")

	err := Errorf("broadcast %s failed", "tx")
	assert.EqualError(t, err, "broadcast tx failed")
}

func TestEnvInt(t *testing.T) {
	t.Setenv("LOGX_TEST_INT", "12")
	assert.Equal(t, 12, envInt("LOGX_TEST_INT", 1))
	t.Setenv("LOGX_TEST_INT", "bad")
	assert.Equal(t, 1, envInt("LOGX_TEST_INT", 1))
	assert.Equal(t, 5, envInt("LOGX_TEST_MISSING", 5))
}
