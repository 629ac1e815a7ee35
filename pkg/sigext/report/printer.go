package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Document is anything that can be printed. Table output uses Headers and
// Rows; JSON and YAML output marshal the document itself.
type Document interface {
	Headers() []string
	Rows() [][]string
}

type PrinterBuilder struct {
	format Format
	query  string
}

type Printer struct {
	format Format
	query  *gojq.Code
}

func NewPrinter() *PrinterBuilder {
	return &PrinterBuilder{format: FormatTable}
}

func (b *PrinterBuilder) WithFormat(format Format) *PrinterBuilder {
	b.format = format
	return b
}

// WithQuery sets a jq filter applied to the JSON form of every document.
// Filtered output is never a table; it falls back to JSON.
func (b *PrinterBuilder) WithQuery(query string) *PrinterBuilder {
	b.query = query
	return b
}

func (b *PrinterBuilder) Build() (*Printer, error) {
	p := &Printer{format: b.format}

	if b.query != "" {
		parsed, err := gojq.Parse(b.query)
		if err != nil {
			return nil, fmt.Errorf("failed to parse jq query '%s': %w", b.query, err)
		}
		p.query, err = gojq.Compile(parsed)
		if err != nil {
			return nil, fmt.Errorf("failed to compile jq query '%s': %w", b.query, err)
		}
		if p.format == FormatTable {
			p.format = FormatJSON
		}
	}

	return p, nil
}

func (p *Printer) Print(ctx context.Context, w io.Writer, doc Document) error {
	emit, closeFn := p.emitter(w, doc)

	if p.query == nil {
		if err := emit(doc); err != nil {
			return err
		}
		return closeFn()
	}

	input, err := toJQInput(doc)
	if err != nil {
		return err
	}

	iter := p.query.RunWithContext(ctx, input)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := result.(error); isErr {
			return fmt.Errorf("jq: %w", err)
		}
		if err := emit(result); err != nil {
			return err
		}
	}

	return closeFn()
}

// emitter returns a function writing one value in the printer's format,
// and a function to call once all values are written.
func (p *Printer) emitter(w io.Writer, doc Document) (func(any) error, func() error) {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode, func() error { return nil }
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc.Encode, enc.Close
	default:
		return func(any) error {
			_, err := fmt.Fprintln(w, Table(doc.Headers(), doc.Rows()))
			return err
		}, func() error { return nil }
	}
}

// toJQInput converts doc to the plain maps and slices gojq works on.
func toJQInput(doc Document) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return input, nil
}
