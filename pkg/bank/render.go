package bank

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// RenderPassage renders a Markdown passage to HTML for API responses.
func RenderPassage(passage string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(passage), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
