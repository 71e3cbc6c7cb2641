package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/statgrid/internal/pivot"
)

// Format selects an output layout.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatCSV, FormatMarkdown, FormatJSON}

// MissingCell is printed for a (row, column) pair with no record.
const MissingCell = "NaN"

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(names, ", "))
}

// Renderer writes a sequence of named tables to one writer.
type Renderer struct {
	w      io.Writer
	format Format
	n      int
}

// New creates a Renderer.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// Render writes one table. Tables after the first are separated by a blank
// line, except in JSON where each table is one line.
func (r *Renderer) Render(name string, t *pivot.Table) error {
	if r.n > 0 && r.format != FormatJSON {
		if _, err := io.WriteString(r.w, "\n"); err != nil {
			return err
		}
	}
	r.n++

	switch r.format {
	case FormatText:
		return renderText(r.w, name, t)
	case FormatCSV:
		return renderCSV(r.w, t)
	case FormatMarkdown:
		return renderMarkdown(r.w, name, t)
	case FormatJSON:
		return renderJSON(r.w, name, t)
	default:
		return fmt.Errorf("unknown format %q", r.format)
	}
}

func cell(t *pivot.Table, row, col string) string {
	v, ok := t.Cell(row, col)
	if !ok {
		return MissingCell
	}
	return v.String()
}

func renderText(w io.Writer, name string, t *pivot.Table) error {
	spec := t.Spec
	if _, err := fmt.Fprintf(w, "%s: %s by %s x %s\n", name, spec.Values, spec.Index, spec.Columns); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(append([]string{spec.Index}, t.Cols...), "\t"))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(t.Cols)+1)
		cells = append(cells, row)
		for _, col := range t.Cols {
			cells = append(cells, cell(t, row, col))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func renderCSV(w io.Writer, t *pivot.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{t.Spec.Index}, t.Cols...)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rec := make([]string, 0, len(t.Cols)+1)
		rec = append(rec, row)
		for _, col := range t.Cols {
			rec = append(rec, cell(t, row, col))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var mdEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func renderMarkdown(w io.Writer, name string, t *pivot.Table) error {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", mdEscaper.Replace(name))

	header := []string{mdEscaper.Replace(t.Spec.Index + ` \ ` + t.Spec.Columns)}
	for _, col := range t.Cols {
		header = append(header, mdEscaper.Replace(col))
	}
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")

	for _, row := range t.Rows {
		cells := []string{mdEscaper.Replace(row)}
		for _, col := range t.Cols {
			cells = append(cells, mdEscaper.Replace(cell(t, row, col)))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// jsonTable is the JSON layout of one table. Cells line up with Columns; a
// null cell is a missing pair.
type jsonTable struct {
	Name    string    `json:"name"`
	Index   string    `json:"index"`
	Pivot   string    `json:"columns_field"`
	Values  string    `json:"values"`
	Columns []string  `json:"columns"`
	Rows    []jsonRow `json:"rows"`
}

type jsonRow struct {
	Key   string    `json:"key"`
	Cells []*string `json:"cells"`
}

func renderJSON(w io.Writer, name string, t *pivot.Table) error {
	out := jsonTable{
		Name:    name,
		Index:   t.Spec.Index,
		Pivot:   t.Spec.Columns,
		Values:  t.Spec.Values,
		Columns: append([]string{}, t.Cols...),
		Rows:    make([]jsonRow, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		jr := jsonRow{Key: row, Cells: make([]*string, len(t.Cols))}
		for i, col := range t.Cols {
			if v, ok := t.Cell(row, col); ok {
				s := v.String()
				jr.Cells[i] = &s
			}
		}
		out.Rows = append(out.Rows, jr)
	}
	return json.NewEncoder(w).Encode(out)
}
