package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOutputWithLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutputWithLevel(buf, LevelWarn)
	t.Cleanup(func() {
		SetOutput(&bytes.Buffer{})
		SetLevel(LevelInfo)
	})

	l := Logger("lib/log-test")
	l.Info("hidden")
	l.Warn("shown", "k", "v")
	Error("global error")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
	assert.Contains(t, buf.String(), "global error")
}

func TestSetJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetJSON(true)
	t.Cleanup(func() {
		SetJSON(false)
		SetOutput(&bytes.Buffer{})
	})

	Logger("lib/json-test").Info("structured")
	assert.Contains(t, buf.String(), `"msg":"structured"`)
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })
	assert.True(t, Configure("info", "text"))
	assert.False(t, Configure("nope", ""))
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), LevelError))
}
