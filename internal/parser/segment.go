package parser

import (
	"strings"

	"github.com/quillbooks/statement-parser/internal/models"
)

// SegmentLines splits an extracted section into candidate transaction lines.
// It drops blank lines, the section's own header line, table-header lines
// (anything containing both "DATE" and "DESCRIPTION"), and total-marker
// lines. The result is a materialized slice rather than a stream because the
// electronic-payment parser needs lookahead over the remaining lines.
func SegmentLines(slice models.SectionSlice) []string {
	a, known := anchors[slice.Kind]
	if !known {
		return nil
	}

	headerUpper := strings.ToUpper(a.header)
	totalUpper := strings.ToUpper(a.total)

	var out []string
	for _, raw := range strings.Split(slice.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		if strings.Contains(upper, headerUpper) {
			continue
		}
		if strings.Contains(upper, "DATE") && strings.Contains(upper, "DESCRIPTION") {
			continue
		}
		if strings.Contains(upper, totalUpper) {
			continue
		}

		out = append(out, line)
	}
	return out
}
