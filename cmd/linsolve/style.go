// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles colours section headers and failures when w is a terminal; for
// pipes and files the renderer falls back to plain text.
type styles struct {
	header  lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
