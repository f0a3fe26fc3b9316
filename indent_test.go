package indent_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/itsatony/go-indent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E2E Integration Tests - Zero Mocks
// These tests exercise the full system from public API through to final output.

func TestE2E_GenerateNestedBlock(t *testing.T) {
	var buf bytes.Buffer
	w := indent.MustNewWriter(&buf, indent.FourSpaces)

	_, err := w.WriteString("func greet(name string) {\n")
	require.NoError(t, err)
	w.Indent()
	_, err = w.WriteString("if name == \"\" {\n")
	require.NoError(t, err)
	w.Indent()
	_, err = w.WriteString("name = \"world\"\n")
	require.NoError(t, err)
	w.Unindent()
	_, err = w.WriteString("}\n")
	require.NoError(t, err)
	_, err = w.WriteString("fmt.Println(\"hello, \" + name)\n")
	require.NoError(t, err)
	w.Unindent()
	_, err = w.WriteString("}\n")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"func greet(name string) {",
		"    if name == \"\" {",
		"        name = \"world\"",
		"    }",
		"    fmt.Println(\"hello, \" + name)",
		"}",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestE2E_BufferedDelegate(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := indent.MustNewWriter(bw, indent.Tabs.MustAtLevel(1))

	_, err := w.WriteString("alpha\nbeta")
	require.NoError(t, err)

	// Nothing reaches the underlying buffer until the bufio delegate is
	// flushed through the writer's dynamic flush detection.
	assert.Empty(t, buf.String())
	require.NoError(t, w.Flush())
	assert.Equal(t, "\talpha\n\tbeta", buf.String())
}

func TestE2E_CustomUnitSession(t *testing.T) {
	var sb strings.Builder
	w := indent.MustNewWriter(&sb, indent.Of("> "))

	_, err := w.Indent().WriteString("quoted\nlines\n")
	require.NoError(t, err)
	_, err = w.Indent().WriteString("nested quote\n")
	require.NoError(t, err)

	assert.Equal(t, "> quoted\n> lines\n> > nested quote\n", sb.String())
	assert.Equal(t, sb.String(), w.String())
}

func TestE2E_PersistedStyleDrivesWriter(t *testing.T) {
	// A style persisted as {unit, level} reconstructs into the shared
	// cached indentation and drives a fresh writer identically.
	persisted := []byte(`{"unit":"  ","level":1}`)

	restored, err := indent.FromJSON(persisted)
	require.NoError(t, err)
	assert.Same(t, indent.TwoSpaces.MustAtLevel(1), restored)

	var buf bytes.Buffer
	w := indent.MustNewWriter(&buf, restored)
	_, err = w.WriteString("key: value\n")
	require.NoError(t, err)
	assert.Equal(t, "  key: value\n", buf.String())

	data, err := json.Marshal(w.Indentation())
	require.NoError(t, err)
	assert.JSONEq(t, string(persisted), string(data))
}

func TestE2E_CloseReleasesDelegate(t *testing.T) {
	var buf bytes.Buffer
	w := indent.MustNewWriter(&buf, indent.Empty)

	_, err := w.WriteString("done")
	require.NoError(t, err)
	require.NoError(t, w.Close(), "closing over a non-closeable delegate must not fail")
	assert.Equal(t, "done", buf.String())
}
