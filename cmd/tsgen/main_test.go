package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestExamplesList(t *testing.T) {
	out, err := execute(t, "examples")
	require.NoError(t, err)
	assert.Contains(t, out, "declare")
	assert.Contains(t, out, "for-of")
	assert.Contains(t, out, "iterate over an array")
}

func TestExamplesRender(t *testing.T) {
	out, err := execute(t, "examples", "declare")
	require.NoError(t, err)
	assert.Equal(t, "let a = 10;\nconsole.log(a + 5);\n", out)

	out, err = execute(t, "examples", "declare", "--backend", "js")
	require.NoError(t, err)
	assert.Contains(t, out, "console.log(a + 5)")

	out, err = execute(t, "ex", "for-of", "--validate")
	require.NoError(t, err)
	assert.Contains(t, out, "for (const item of items) {")
}

func TestExamplesErrors(t *testing.T) {
	_, err := execute(t, "examples", "declar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample not found")
	assert.Contains(t, err.Error(), "Did you mean 'declare'?")

	_, err = execute(t, "examples", "declare", "--backend", "wasm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend: wasm")
}

func TestASTJSON(t *testing.T) {
	out, err := execute(t, "ast", "declare")
	require.NoError(t, err)

	var root ASTNode
	require.NoError(t, json.Unmarshal([]byte(out), &root))
	assert.Equal(t, "Program", root.Type)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "Let", root.Children[0].Type)
	assert.Equal(t, "let a", root.Children[0].Value)
	assert.Equal(t, "Call", root.Children[1].Type)
}

func TestASTQuery(t *testing.T) {
	out, err := execute(t, "ast", "declare", "--query", "children[*].type")
	require.NoError(t, err)
	var types []string
	require.NoError(t, json.Unmarshal([]byte(out), &types))
	assert.Equal(t, []string{"Let", "Call"}, types)

	_, err = execute(t, "ast", "declare", "--query", "children[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
}

func TestASTText(t *testing.T) {
	out, err := execute(t, "ast", "function", "--output", "text")
	require.NoError(t, err)
	for _, want := range []string{"Program", "Let", "Func", `"x: number"`, "Binary", `"*"`} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasPrefix(out, "Program\n"))

	_, err = execute(t, "ast", "declare", "--output", "yaml")
	require.Error(t, err)
}

func TestSplice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("function main() {\n  return 1;\n}\n"), 0o644))

	out, err := execute(t, "splice", path, "--func", "main", "--sample", "declare")
	require.NoError(t, err)
	letIdx := strings.Index(out, "let a = 10")
	retIdx := strings.Index(out, "return 1")
	require.GreaterOrEqual(t, letIdx, 0)
	assert.Greater(t, retIdx, letIdx)

	_, err = execute(t, "splice", path, "--func", "main", "--sample", "declare", "-w")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "console.log(a + 5)")
}

func TestSpliceErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("function main() {}\n"), 0o644))

	_, err := execute(t, "splice", path, "--func", "mian", "--sample", "declare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = execute(t, "splice", path, "--sample", "declare")
	require.Error(t, err)

	_, err = execute(t, "splice", filepath.Join(t.TempDir(), "missing.js"), "--func", "main", "--sample", "declare")
	require.Error(t, err)
}
