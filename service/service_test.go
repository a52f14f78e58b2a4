package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func process(t *testing.T, body string) (Response, map[string]any) {
	t.Helper()
	resp, err := NewProcessor().Process(body)
	assert.NoError(t, err)
	data, err := resp.JSON()
	assert.NoError(t, err)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))
	return resp, decoded
}

func TestProcessEmptyBody(t *testing.T) {
	for _, body := range []string{"", "   ", "\n\t "} {
		resp, _ := NewProcessor().Process(body)
		data, err := resp.JSON()
		assert.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	}
}

func TestProcessMeta(t *testing.T) {
	_, decoded := process(t, " META\n")
	assert.Equal(t, 2, len(decoded))
	keys := decoded["Keys"].(map[string]any)
	assert.Equal(t, "p", keys["path"])
	assert.Equal(t, "oa", keys["otherAttributes"])
	types := decoded["TokenTypes"].([]any)
	first := types[0].(map[string]any)
	assert.Equal(t, "EOF", first["n"])
	assert.Equal(t, 0.0, first["v"])
}

func TestProcessMetaIsCaseSensitive(t *testing.T) {
	resp, decoded := process(t, "meta")
	assert.Equal(t, 1, len(resp.Errors))
	_, ok := decoded["Errors"]
	assert.True(t, ok)
}

func TestProcessSelectLiteral(t *testing.T) {
	resp, decoded := process(t, "SELECT 1")
	assert.Zero(t, resp.Errors)
	assert.Equal(t, 2, len(decoded))

	tree := decoded["Tree"].([]any)
	paths := make([]string, 0, len(tree))
	for _, n := range tree {
		paths = append(paths, n.(map[string]any)["p"].(string))
	}
	assert.Equal(t, []string{"/0/0/0/0/", "/0/0/0/", "/0/0/", "/0/", "/"}, paths)

	literal := tree[0].(map[string]any)
	assert.Equal(t, "IntegerLiteral", literal["t"])
	assert.Equal(t, "Expression", literal["n"])
	assert.Equal(t, map[string]any{"Value": "1"}, literal["oa"].(map[string]any))
	root := tree[4].(map[string]any)
	_, hasName := root["n"]
	assert.False(t, hasName)

	stream := decoded["TokenStream"].([]any)
	assert.Equal(t, 4, len(stream))
	assert.Equal(t, "SELECT", stream[0].(map[string]any)["tx"])
	assert.Equal(t, "", stream[3].(map[string]any)["tx"])
}

func TestProcessSyntaxError(t *testing.T) {
	resp, decoded := process(t, "SELECT FROM")
	assert.Equal(t, 1, len(resp.Errors))
	assert.Equal(t, 1, len(decoded))
	errs := decoded["Errors"].([]any)
	e := errs[0].(map[string]any)
	assert.Equal(t, 103.0, e["cd"])
	assert.Equal(t, 1.0, e["ln"])
	assert.Equal(t, 8.0, e["co"])
	assert.Equal(t, 7.0, e["of"])
	assert.True(t, strings.Contains(e["m"].(string), "FROM"))
}

func TestProcessEnvelopeKeysAreNotAliased(t *testing.T) {
	data, err := NewProcessor().Process("SELECT a FROM t")
	assert.NoError(t, err)
	body, err := data.JSON()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), `{"Tree":[`))
	assert.Contains(t, string(body), `],"TokenStream":[`)
}
