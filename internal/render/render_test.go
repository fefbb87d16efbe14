package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
	mdwast "github.com/msto63/limonaca/foundation/limonaca/ast"
	mdwparser "github.com/msto63/limonaca/foundation/limonaca/parser"
)

func mustTokens(t *testing.T, source string) []mdwparser.Token {
	t.Helper()
	tokens, err := mdwparser.Tokenize(source)
	require.NoError(t, err)
	return tokens
}

func mustProgram(t *testing.T, source string) []*mdwast.Node {
	t.Helper()
	nodes, err := mdwparser.New(mdwparser.Options{}).ParseProgram(mustTokens(t, source))
	require.NoError(t, err)
	return nodes
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatTree},
		{"tree", FormatTree},
		{" JSON ", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Equal(t, mdwerror.CodeInvalidInput, mdwerror.GetCode(err))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "tree", FormatTree.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "Format(9)", Format(9).String())
}

func TestTokens(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tokens(&buf, mustTokens(t, "1 + x;"), Style{}))

	assert.Equal(t, "Number 1\nPlus\nIdentifier x\nSemiColon\nEof\n", buf.String())
}

func TestTokensWithPositions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tokens(&buf, mustTokens(t, "a\n  b;"), Style{Positions: true}))

	want := "1:1     Identifier a\n" +
		"2:3     Identifier b\n" +
		"2:4     SemiColon\n" +
		"2:5     Eof\n"
	assert.Equal(t, want, buf.String())
}

func TestTokensColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tokens(&buf, mustTokens(t, "devprint 7;"), Style{Color: true}))

	out := buf.String()
	assert.Contains(t, out, "KeywordDevprint")
	assert.Contains(t, out, "Number")
	assert.Contains(t, out, " 7\n")
}

func TestTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, mustProgram(t, "1 - 2 - 3; devprint x;"), Style{}))

	want := "Minus\n" +
		"  Minus\n" +
		"    Number 1\n" +
		"    Number 2\n" +
		"  Number 3\n" +
		"Devprint\n" +
		"  Identifier x\n"
	assert.Equal(t, want, buf.String())
}

func TestTreeWithPositions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, mustProgram(t, "1 + x;"), Style{Positions: true}))

	want := "Plus  @1:3\n" +
		"  Number 1  @1:1\n" +
		"  Identifier x  @1:5\n"
	assert.Equal(t, want, buf.String())
}

func TestTreeColorKeepsLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, mustProgram(t, "(a + 2) * b;"), Style{Color: true}))

	out := buf.String()
	for _, label := range []string{"Multiply", "Plus", "Identifier a", "Number 2", "Identifier b"} {
		assert.Contains(t, out, label)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, mustProgram(t, "devprint 1 + 2;")))

	var doc []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, "Devprint", doc[0]["kind"])

	plus, ok := doc[0]["left"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Plus", plus["kind"])
	assert.Nil(t, doc[0]["right"])
}

func TestJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, mustProgram(t, "x * 3;")))

	var doc []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, "Multiply", doc[0]["kind"])
	assert.Equal(t, 1, doc[0]["line"])
	assert.Equal(t, 3, doc[0]["column"])

	right, ok := doc[0]["right"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Number", right["kind"])
	assert.Equal(t, "3", right["value"])
}

func TestWriteDispatch(t *testing.T) {
	nodes := mustProgram(t, "5;")

	var tree, js, ym bytes.Buffer
	require.NoError(t, Write(&tree, FormatTree, nodes, Style{}))
	require.NoError(t, Write(&js, FormatJSON, nodes, Style{}))
	require.NoError(t, Write(&ym, FormatYAML, nodes, Style{}))

	assert.Equal(t, "Number 5\n", tree.String())
	assert.Contains(t, js.String(), `"kind": "Number"`)
	assert.Contains(t, ym.String(), "kind: Number")

	err := Write(&tree, Format(0), nodes, Style{})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestErrorWithContext(t *testing.T) {
	source := "1 + @;"
	_, err := mdwparser.Tokenize(source)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, Error(&buf, err, source, Style{}))

	want := "Error: unrecognized character '@' at line 1, column 5\n" +
		"  1 + @;\n" +
		"      ^\n"
	assert.Equal(t, want, buf.String())
}

func TestErrorContextOnLaterLine(t *testing.T) {
	source := "1;\n\t(2 + 3;"
	_, err := mdwparser.ParseSource("(2 + 3;")
	require.Error(t, err)

	// Position the same error on the second line of a larger source
	var unclosed *mdwparser.UnclosedGroupError
	require.True(t, errors.As(err, &unclosed))
	unclosed.Found.Line = 2
	unclosed.Found.Column = 8

	var buf bytes.Buffer
	require.NoError(t, Error(&buf, unclosed, source, Style{}))

	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "  \t(2 + 3;", string(lines[1]))
	assert.Equal(t, "  \t      ^", string(lines[2]))
}

func TestErrorWithoutPosition(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Error(&buf, errors.New("boom"), "1;", Style{}))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	require.NoError(t, Error(&buf, nil, "", Style{}))
	assert.Empty(t, buf.String())
}

func TestEncodeDocument(t *testing.T) {
	doc := struct {
		RunID  string            `json:"run_id" yaml:"run_id"`
		Tokens []mdwparser.Token `json:"tokens" yaml:"tokens"`
	}{RunID: "run-1", Tokens: mustTokens(t, "a;")}

	var js, ym bytes.Buffer
	require.NoError(t, Encode(&js, FormatJSON, doc))
	require.NoError(t, Encode(&ym, FormatYAML, doc))

	assert.Contains(t, js.String(), `"kind": "Identifier"`)
	assert.Contains(t, js.String(), `"run_id": "run-1"`)
	assert.Contains(t, ym.String(), "kind: SemiColon")

	err := Encode(&js, FormatTree, doc)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}
