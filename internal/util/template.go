package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"default": defaultValue,
	"upper":   strings.ToUpper,
	"lower":   strings.ToLower,
	"trim":    strings.TrimSpace,
	"title":   title,
	"join":    join,
	"json":    toJSON,
}

// Template is a parsed text/template bound to the helper funcs above.
type Template struct {
	text string
	tmpl *template.Template
}

// ParseTemplate compiles text. With strict set, executing against data that
// lacks a referenced key fails instead of rendering "<no value>".
func ParseTemplate(text string, strict bool) (*Template, error) {
	t := template.New("payload").Funcs(funcs)
	if strict {
		t = t.Option("missingkey=error")
	}

	parsed, err := t.Parse(text)
	if err != nil {
		return nil, err
	}

	return &Template{text: text, tmpl: parsed}, nil
}

// Render executes the template against data.
func (t *Template) Render(data map[string]any) (string, error) {
	if !strings.Contains(t.text, "{{") {
		return t.text, nil
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// RenderTemplate parses and renders text in one step.
func RenderTemplate(text string, data map[string]any, strict bool) (string, error) {
	t, err := ParseTemplate(text, strict)
	if err != nil {
		return "", err
	}

	return t.Render(data)
}

func defaultValue(def, val any) any {
	if val == nil || val == "" {
		return def
	}
	return val
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func join(sep string, items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
