package snapshot

import (
	"fmt"
	"strings"
)

// maxDiffLines caps the excerpt so one giant artifact does not flood the
// report.
const maxDiffLines = 20

// diffExcerpt renders a line-oriented excerpt around the first divergence
// between expected and actual. Expected lines are prefixed with "-", actual
// lines with "+".
func diffExcerpt(expected, actual []byte) string {
	expLines := strings.Split(string(expected), "\n")
	actLines := strings.Split(string(actual), "\n")

	// Find the first differing line.
	first := 0
	for first < len(expLines) && first < len(actLines) && expLines[first] == actLines[first] {
		first++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "first difference at line %d\n", first+1)

	// Each side gets its own emission budget so a long expected tail cannot
	// starve the actual side.
	expEmitted := 0
	for i := first; i < len(expLines) && expEmitted < maxDiffLines; i++ {
		fmt.Fprintf(&b, "- %s\n", expLines[i])
		expEmitted++
	}
	actEmitted := 0
	for i := first; i < len(actLines) && actEmitted < maxDiffLines; i++ {
		fmt.Fprintf(&b, "+ %s\n", actLines[i])
		actEmitted++
	}
	if len(expLines)-first > expEmitted || len(actLines)-first > actEmitted {
		b.WriteString("(diff truncated)\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
