// Package printable loads a document and opens the print dialog once the
// document is known to be printable.
package printable

import (
	"context"
	"html/template"
	"sync"
)

// Printer opens the print dialog.
type Printer interface {
	Print()
}

// Result is the state of a printable page after Run.
type Result[T any] struct {
	Doc     T
	Err     error
	Ready   bool
	Printed bool
}

// View fetches a document and prints it exactly once, and only when the fetch
// succeeded and Ready accepts the document. Ready may be nil, meaning any
// successfully loaded document is printable.
type View[T any] struct {
	Load    func(ctx context.Context) (T, error)
	Ready   func(T) bool
	Printer Printer

	once   sync.Once
	result Result[T]
}

// Run loads and prints on the first call. Later calls return the first result
// without loading or printing again.
func (v *View[T]) Run(ctx context.Context) Result[T] {
	v.once.Do(func() {
		doc, err := v.Load(ctx)
		if err != nil {
			v.result = Result[T]{Err: err}
			return
		}
		v.result = Result[T]{Doc: doc, Ready: v.Ready == nil || v.Ready(doc)}
		if v.result.Ready && v.Printer != nil {
			v.Printer.Print()
			v.result.Printed = true
		}
	})
	return v.result
}

// NonEmpty is a Ready func for list documents.
func NonEmpty[E any](list []E) bool { return len(list) > 0 }

// PagePrinter is the Printer for rendered pages: once armed, the page carries
// a script that calls window.print() a single time after it loads.
type PagePrinter struct {
	armed bool
}

func (p *PagePrinter) Print() { p.armed = true }

func (p *PagePrinter) Armed() bool { return p.armed }

const autoPrintScript = `<script>window.addEventListener("load", function () { window.print(); }, { once: true });</script>`

// Script returns the auto-print script, or nothing when not armed.
func (p *PagePrinter) Script() template.HTML {
	if !p.armed {
		return ""
	}
	return template.HTML(autoPrintScript)
}
