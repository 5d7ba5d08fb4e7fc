// Package report renders the resolved configuration and the planned stage
// sequence for user inspection. Rendering is pure formatting: the same
// configuration and plan always produce the same text, and nothing here has
// side effects.
package report

import (
	"fmt"
	"strings"

	"hogpipe/internal/config"
	"hogpipe/internal/stage"
)

// Render produces the labeled configuration dump followed by the ordered
// action summary. It is always shown before any stage executes, dry-run
// included.
func Render(cfg config.Model, plan []stage.Stage) string {
	var b strings.Builder

	b.WriteString("Configuration:\n")
	fields := []struct {
		label string
		value string
	}{
		{"project path", cfg.ProjectPath},
		{"data path", cfg.DataPath},
		{"lib path", cfg.LibPath},
		{"cells", cfg.Cells},
		{"bins", cfg.Bins},
		{"dataset", cfg.Dataset},
		{"keyword", cfg.Keyword},
		{"fraction", cfg.Fraction},
		{"label file", cfg.LabelFile},
		{"partition", fmt.Sprintf("%t", cfg.DoPartition)},
		{"extract features", fmt.Sprintf("%t", cfg.DoExtract)},
		{"classify", fmt.Sprintf("%t", cfg.DoClassify)},
		{"dry run", fmt.Sprintf("%t", cfg.DryRun)},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "  %-16s : %s\n", f.label, f.value)
	}

	b.WriteString("\n")
	b.WriteString(Summary(plan))
	b.WriteString("\n")
	return b.String()
}

// Summary renders the ordered action line, listing only the active stages,
// e.g. "Begin -> Partition dataset -> Classify images -> End".
func Summary(plan []stage.Stage) string {
	parts := make([]string, 0, len(plan)+2)
	parts = append(parts, "Begin")
	for _, s := range plan {
		parts = append(parts, s.Label())
	}
	parts = append(parts, "End")
	return strings.Join(parts, " -> ")
}
