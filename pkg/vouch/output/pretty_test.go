package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyFormatterFormat(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "/srv/data")
	assert.Contains(t, out, "MISMATCH")
	assert.Contains(t, out, "b.txt")
	assert.Contains(t, out, "aaaa")
	assert.Contains(t, out, "bbbb")
	assert.Contains(t, out, "MOVED")
	assert.Contains(t, out, "old/d.txt")
	assert.Contains(t, out, "EXTRA")
	assert.Contains(t, out, "SKIPPED")

	// Matched files are counted, never listed.
	assert.NotContains(t, out, "a.txt")
	assert.Contains(t, out, "Matched:")
}

func TestPrettyFormatterQuiet(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	result := sampleResult()
	result.Quiet = true
	require.NoError(t, formatter.Format(&buf, result))
	out := buf.String()

	// Quiet suppresses everything except mismatch evidence.
	assert.Contains(t, out, "MISMATCH")
	assert.NotContains(t, out, "MOVED")
	assert.NotContains(t, out, "EXTRA")
	assert.NotContains(t, out, "SKIPPED")
	assert.NotContains(t, out, "Matched:")
}

func TestPrettyFormatterMovedSuppressedCandidates(t *testing.T) {
	formatter := &PrettyFormatter{}
	var buf bytes.Buffer

	result := sampleResult()
	result.Verdicts[3].PriorPaths = nil // suppressed by the candidate limit
	require.NoError(t, formatter.Format(&buf, result))

	assert.Contains(t, buf.String(), "multiple prior locations")
}
