package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/opendrivego/internal/road"
)

// writeSummary prints m in the requested output format.
func writeSummary(w io.Writer, m *road.Map, format string) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	for _, seg := range m.Segments() {
		_, err := fmt.Fprintf(w, "road %d junction=%t lanes=%d successors=%s predecessors=%s geometries=%d\n",
			seg.ID, seg.IsJunction, len(seg.Lanes),
			formatLinks(seg.Successors), formatLinks(seg.Predecessors),
			len(seg.Geometries))
		if err != nil {
			return err
		}
	}
	return nil
}

// formatLinks renders links as [2:start 3:end].
func formatLinks(links []road.LinkEntry) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		contact := "end"
		if l.IsStart {
			contact = "start"
		}
		parts = append(parts, fmt.Sprintf("%d:%s", l.RoadID, contact))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
