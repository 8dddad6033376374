// Package output provides the stdout printer for gh-context.
// Rendered JSON and written file paths go through a Printer; diagnostics go
// through the log package on stderr.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes primary output.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer writing to w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context, defaulting to os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Write writes raw bytes. Printer is an io.Writer so completion scripts
// can be generated into it.
func (p *Printer) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

// Document writes a rendered document, adding a final newline if missing.
func (p *Printer) Document(data []byte) error {
	if _, err := p.w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] == '\n' {
		return nil
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

// Generated reports a written file.
func (p *Printer) Generated(path string) {
	fmt.Fprintf(p.w, "Generated context in %s\n", path)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}
