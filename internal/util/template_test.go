package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	data := map[string]any{
		"name":  "ada",
		"tags":  []any{"a", 1, true},
		"empty": "",
		"html":  "<b>",
	}

	cases := []struct {
		tmpl string
		want string
	}{
		{"plain text", "plain text"},
		{"Hi {{.name}}", "Hi ada"},
		{"{{upper .name}}", "ADA"},
		{"{{title .name}}", "Ada"},
		{"{{lower \"ABC\"}}", "abc"},
		{"{{join \",\" .tags}}", "a,1,true"},
		{"{{default \"none\" .empty}}", "none"},
		{"{{.html}}", "<b>"},
		{"{{trim \"  x  \"}}", "x"},
		{"{{json .tags}}", `["a",1,true]`},
	}

	for _, tc := range cases {
		got, err := RenderTemplate(tc.tmpl, data, false)
		require.NoError(t, err, tc.tmpl)
		assert.Equal(t, tc.want, got, tc.tmpl)
	}
}

func TestRenderTemplate_Errors(t *testing.T) {
	_, err := RenderTemplate("{{.name", nil, false)
	assert.Error(t, err)

	_, err = RenderTemplate("{{.missing}}", map[string]any{}, true)
	assert.Error(t, err)

	out, err := RenderTemplate("{{.missing}}", map[string]any{}, false)
	require.NoError(t, err)
	assert.Equal(t, "<no value>", out)
}

func TestParseTemplate_Reuse(t *testing.T) {
	tmpl, err := ParseTemplate("Hello {{.name}}", false)
	require.NoError(t, err)

	for _, name := range []string{"a", "b"} {
		out, err := tmpl.Render(map[string]any{"name": name})
		require.NoError(t, err)
		assert.Equal(t, "Hello "+name, out)
	}
}
