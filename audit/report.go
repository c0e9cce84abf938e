package audit

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Render writes the report as human-readable tables.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Gate call sites: %d\n", len(r.Sites))
	if len(r.Sites) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header("Site", "Package", "Function", "Reason", "Literal")
		for _, s := range r.Sites {
			lit := ""
			if s.Literal {
				lit = "yes"
			}
			table.Append(s.Pos, s.Package, s.Function, s.Reason, lit)
		}
		table.Render()
	}

	fmt.Fprintf(w, "\nMarker declarations: %d\n", len(r.Declarations))
	if len(r.Declarations) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header("Site", "Package", "Type", "Exposes")
		for _, d := range r.Declarations {
			table.Append(d.Pos, d.Package, d.Type, joinExposes(d.Exposes))
		}
		table.Render()
	}
}

// WriteYAML writes the report in machine-readable form.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

func joinExposes(exposes []string) string {
	out := ""
	for i, e := range exposes {
		if i > 0 {
			out += ", "
		}
		out += e
	}
	return out
}
