package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaojitui007/asynclog"
)

func TestConsole_PlainOutput(t *testing.T) {
	var out bytes.Buffer

	// A bytes.Buffer is not a terminal, so colors stay off.
	consoleSink := NewConsole(&out, asynclog.DefaultColorConfig())

	require.NoError(t, consoleSink.Write([]asynclog.Record{
		testRecord(asynclog.InfoSeverity, "plain one"),
		testRecord(asynclog.ErrorSeverity, "plain two"),
	}))

	rendered := out.String()

	assert.NotContains(t, rendered, asynclog.Reset)

	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " plain one"))
	assert.True(t, strings.HasSuffix(lines[1], " plain two"))

	assert.Equal(t, int64(out.Len()), consoleSink.ApproximateSize())
	require.NoError(t, consoleSink.Flush())
}

func TestConsole_ForcedColors(t *testing.T) {
	var out bytes.Buffer

	colorConfig := asynclog.DefaultColorConfig()
	colorConfig.ForceTTY = true

	consoleSink := NewConsole(&out, colorConfig)

	require.NoError(t, consoleSink.Write([]asynclog.Record{
		testRecord(asynclog.WarnSeverity, "colored"),
	}))

	rendered := out.String()

	assert.Contains(t, rendered, asynclog.Yellow)
	assert.Contains(t, rendered, asynclog.Reset)
	assert.Contains(t, rendered, " colored")
}

func TestConsole_ColorsDisabled(t *testing.T) {
	var out bytes.Buffer

	consoleSink := NewConsole(&out, asynclog.ColorConfig{Enable: false, ForceTTY: true})

	require.NoError(t, consoleSink.Write([]asynclog.Record{
		testRecord(asynclog.WarnSeverity, "no color"),
	}))

	assert.NotContains(t, out.String(), asynclog.Yellow)
}
