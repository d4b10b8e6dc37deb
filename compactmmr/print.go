package compactmmr

import "strings"

// DebugString renders the peak list as a hex-joined string, for log lines
// and test failure output. Adapted from the node-store MMR's proof-path
// stringer.
func (m MMR) DebugString(sep string) string {
	parts := make([]string, len(m.peaks))
	for i, p := range m.peaks {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}
