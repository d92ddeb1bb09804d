package loader

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"kdd-pipeline/internal/schema"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	countColor   = color.New(color.FgYellow)
)

// Inspect prints a head preview, the table shape and the derived category
// distribution. Output is informational only; its format is not part of
// the file contract.
func Inspect(w io.Writer, t *schema.Table, previewRows int) {
	headingColor.Fprintln(w, "Initial data inspection (head):")
	if previewRows > t.Rows() {
		previewRows = t.Rows()
	}
	for i := 0; i < previewRows; i++ {
		r := t.Records[i]
		fmt.Fprintf(w, "  %4d  duration=%-5d proto=%-4s service=%-8s flag=%-3s src_bytes=%-6d dst_bytes=%-6d attack_type=%s\n",
			i, r.Duration, r.ProtocolType, r.Service, r.Flag, r.SrcBytes, r.DstBytes, r.AttackType)
	}

	fmt.Fprintf(w, "\nDataset size: (%d, %d)\n", t.Rows(), t.Cols())

	headingColor.Fprintln(w, "\nAttack category distribution:")
	counts := t.CategoryCounts()
	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return counts[categories[i]] > counts[categories[j]]
	})
	for _, c := range categories {
		countColor.Fprintf(w, "  %-8s %d\n", c, counts[c])
	}
}
