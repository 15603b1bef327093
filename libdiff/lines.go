package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineCount reports how many lines differ between two renderings,
// comparing position by position with the shorter side padded out by
// empty lines.
func LineCount(before, after string) int {
	a := strings.Split(before, "\n")
	b := strings.Split(after, "\n")
	n := max(len(a), len(b))
	count := 0
	for i := 0; i < n; i++ {
		var av, bv string
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			count++
		}
	}
	return count
}

var (
	delColor = color.New(color.FgRed)
	insColor = color.New(color.FgGreen)
)

// Unified renders a line-level diff with -/+ markers. Deleted and
// inserted lines are colored unless color output is disabled globally.
func Unified(before, after string) string {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, before)
	toRunes := mapLinesTo(lineMap, runeMap, after)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			line := runeMap[r]
			switch diff.Type {
			case diffpatch.DiffDelete:
				res.WriteString(delColor.Sprintf("-%s", line))
			case diffpatch.DiffInsert:
				res.WriteString(insColor.Sprintf("+%s", line))
			case diffpatch.DiffEqual:
				res.WriteString(" ")
				res.WriteString(line)
			}
			res.WriteString("\n")
		}
	}
	return res.String()
}

// mapLinesTo interns each distinct line as a rune so whole documents
// diff as rune sequences.
func mapLinesTo(m map[string]rune, im map[rune]string, text string) []rune {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}
