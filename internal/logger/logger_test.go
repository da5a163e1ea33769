package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := log
	log = New(&buf)
	t.Cleanup(func() {
		log = old
		SetLevel("info")
	})
	return &buf
}

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
	assert.NotNil(t, L())
}

func TestInfo(t *testing.T) {
	buf := capture(t)

	Info("test message", "tenant_id", "T1")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, `"tenant_id":"T1"`)
	assert.Contains(t, output, `"level":"info"`)
}

func TestError(t *testing.T) {
	buf := capture(t)

	Error("test error", "error", assert.AnError)

	output := buf.String()
	assert.Contains(t, output, "test error")
	assert.Contains(t, output, assert.AnError.Error())
}

func TestDebug_RespectsLevel(t *testing.T) {
	buf := capture(t)

	Debug("hidden debug")
	assert.NotContains(t, buf.String(), "hidden debug")

	SetLevel("debug")
	Debug("test debug")
	assert.Contains(t, buf.String(), "test debug")
}

func TestInfof(t *testing.T) {
	buf := capture(t)

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestErrorf(t *testing.T) {
	buf := capture(t)

	Errorf("failed %d times", 3)

	assert.Contains(t, buf.String(), "failed 3 times")
}

func TestWarn(t *testing.T) {
	buf := capture(t)

	SetLevel("error")
	Warn("quiet warning")
	assert.Empty(t, buf.String())

	SetLevel("warn")
	Warn("loud warning")
	assert.Contains(t, buf.String(), "loud warning")
}

func TestWithError(t *testing.T) {
	buf := capture(t)

	WithError(assert.AnError).Info("test with error")

	output := buf.String()
	assert.Contains(t, output, "test with error")
	assert.Contains(t, output, `"error"`)
}

func TestWithFields(t *testing.T) {
	buf := capture(t)

	WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 123,
	}).Info("test with fields")

	output := buf.String()
	assert.Contains(t, output, "test with fields")
	assert.Contains(t, output, "key1")
	assert.Contains(t, output, "value1")
}
