package jsonfmt_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/reelsim/internal/jsonfmt"
)

func TestFormatString_Indents(t *testing.T) {
	got := jsonfmt.FormatString(`{"a":1,"b":[1,2],"c":{}}`)
	want := "{\n" +
		"    \"a\": 1,\n" +
		"    \"b\": [\n" +
		"        1,\n" +
		"        2\n" +
		"    ],\n" +
		"    \"c\": {}\n" +
		"}"
	assert.Equal(t, want, got)
}

func TestFormatString_PreservesKeyOrder(t *testing.T) {
	got := jsonfmt.FormatString(`{"zeta":1,"alpha":2,"mid":3}`)
	z := strings.Index(got, "zeta")
	a := strings.Index(got, "alpha")
	m := strings.Index(got, "mid")
	assert.True(t, z < a && a < m, "key order changed:\n%s", got)
}

func TestFormatString_KeepsNonASCII(t *testing.T) {
	got := jsonfmt.FormatString(`{"name":"héllo","city":"Zürich"}`)
	assert.Contains(t, got, `"héllo"`)
	assert.Contains(t, got, `"Zürich"`)
}

func TestFormatString_Scalars(t *testing.T) {
	assert.Equal(t, "true", jsonfmt.FormatString(" true "))
	assert.Equal(t, "null", jsonfmt.FormatString("null"))
	assert.Equal(t, "1.5e3", jsonfmt.FormatString("1.5e3"))
	assert.Equal(t, `"x"`, jsonfmt.FormatString(`"x"`))
	assert.Equal(t, "[]", jsonfmt.FormatString("[ ]"))
}

func TestFormatString_NumbersCopiedAsWritten(t *testing.T) {
	assert.Equal(t, "[\n    2.50,\n    -0,\n    1e5\n]", jsonfmt.FormatString("[2.50,-0,1e5]"))
}

func TestFormatString_Invalid(t *testing.T) {
	for _, in := range []string{`{"a":`, `{"a":1} trailing`, ``, `   `, `{'a':1}`} {
		got := jsonfmt.FormatString(in)
		assert.True(t, strings.HasPrefix(got, "Invalid JSON: "), "input %q gave %q", in, got)
	}
}

func TestFormat_MalformedError(t *testing.T) {
	_, err := jsonfmt.Format([]byte(`[1,2`))
	require.Error(t, err)
	assert.True(t, jsonfmt.IsMalformed(err))
}

func TestFormatFile_ToOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "state.json")
	out := filepath.Join(dir, "pretty.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"reels":[[0,1],[2]]}`), 0644))

	msg, err := jsonfmt.FormatFile(in, out)
	require.NoError(t, err)
	assert.Equal(t, "Formatted JSON written to "+out, msg)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, jsonfmt.FormatString(`{"reels":[[0,1],[2]]}`), string(data))
}

func TestFormatFile_NoOutputReturnsText(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"a":true}`), 0644))

	text, err := jsonfmt.FormatFile(in, "")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": true\n}", text)
}

func TestFormatFile_MissingInput(t *testing.T) {
	_, err := jsonfmt.FormatFile(filepath.Join(t.TempDir(), "missing.json"), "")
	require.Error(t, err)
	assert.False(t, jsonfmt.IsMalformed(err))
}

func TestFormatFile_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(in, []byte(`{nope}`), 0644))

	_, err := jsonfmt.FormatFile(in, "")
	require.Error(t, err)
	assert.True(t, jsonfmt.IsMalformed(err))
}

func TestPropertyFormatIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,6}`), 0, 5, rapid.ID[string]).Draw(t, "keys")
		nums := rapid.SliceOfN(rapid.IntRange(-1000, 1000), len(keys), len(keys)).Draw(t, "nums")

		var b strings.Builder
		b.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"` + k + `":[` + strings.Repeat("0,", i) + strconv.Itoa(nums[i]) + "]")
		}
		b.WriteString("}")

		once := jsonfmt.FormatString(b.String())
		if strings.HasPrefix(once, "Invalid JSON") {
			t.Fatalf("generated document rejected: %s: %s", b.String(), once)
		}
		twice := jsonfmt.FormatString(once)
		if once != twice {
			t.Fatalf("formatting is not idempotent:\n%s\n---\n%s", once, twice)
		}
	})
}
