// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package content turns Markdown notes into the HTML fragments journal
// entries store.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var ErrEmptyMarkdown = errors.New("markdown source is empty")

// Renderer converts Markdown to an HTML fragment. Raw HTML embedded in the
// source is dropped.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a Renderer with GitHub-flavoured extensions
// (tables, strikethrough, task lists, autolinks).
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// ToHTML renders src. Whitespace-only input is rejected with
// [ErrEmptyMarkdown].
func (r *Renderer) ToHTML(src []byte) (string, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return "", ErrEmptyMarkdown
	}

	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("error converting markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
