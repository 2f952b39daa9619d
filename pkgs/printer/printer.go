// Package printer writes styled, human facing output for the CLI.
package printer

import (
	"context"
	"fmt"
	"io"

	"github.com/hay-kot/cdx/pkgs/styles"
)

type Printer struct {
	writer io.Writer
	base   styles.RenderFunc
	light  styles.RenderFunc
}

func New(w io.Writer) *Printer {
	return &Printer{
		writer: w,
		base:   styles.Bold,
		light:  styles.Subtle,
	}
}

// Ctx returns a copy of the printer that writes to the context writer, if one
// was set with WithWriter.
func (p *Printer) Ctx(ctx context.Context) *Printer {
	cp := *p
	if w, ok := GetWriter(ctx); ok {
		cp.writer = w
	}
	return &cp
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.writer, s)
}

func (p *Printer) FatalError(err error) {
	p.LineBreak()
	p.println(styles.ErrorBox("Error", err.Error()))
}

func (p *Printer) Title(title string) {
	p.println(p.base(title))
}

func (p *Printer) LineBreak() {
	p.println("")
}

// StatusListItem is a single row of a StatusList.
type StatusListItem struct {
	Ok     bool
	Status string
	Detail string
}

func (p *Printer) StatusList(title string, items []StatusListItem) {
	if title != "" {
		p.Title(title)
	}

	for _, item := range items {
		icon := styles.Success(styles.Check)
		if !item.Ok {
			icon = styles.Padding(styles.Error(styles.Cross))
		}

		line := icon + " " + item.Status
		if item.Detail != "" {
			line += p.light(item.Detail)
		}
		p.println(line)
	}
}
