package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/vanity-recon/pkg/recon"
	"github.com/kataras/vanity-recon/pkg/vanity"
)

// Status glyphs used in front of every result line.
const (
	GlyphAvailable = "✅"
	GlyphTaken     = "❌"
	GlyphError     = "⚠️ "
	GlyphNumber    = "📞"
	GlyphPattern   = "🔢"
)

const bannerWidth = 45

// ToText renders a report as the human-readable terminal report: a banner, one
// block per section with a line per lookup, the pattern counts, the scanned
// numbers formatted as AAA-PPP-NNNN and the closing commentary.
func ToText(r *recon.Report) string {
	var sb strings.Builder

	if r.Title != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n%s\n", r.Title, strings.Repeat("=", bannerWidth)))
	}

	if r.Flagship != nil {
		sb.WriteString("\n")
		writeSection(&sb, r.Flagship)
	}

	for i := range r.Sections {
		sb.WriteString("\n")
		writeSection(&sb, &r.Sections[i])
	}

	if r.Patterns != nil {
		sb.WriteString("\n")
		if r.Patterns.Title != "" {
			sb.WriteString(r.Patterns.Title + "\n")
		}
		for _, pc := range r.Patterns.Counts {
			sb.WriteString(PatternLine(pc) + "\n")
		}
	}

	if r.Scan != nil {
		sb.WriteString("\n")
		if r.Scan.Title != "" {
			sb.WriteString(r.Scan.Title + "\n")
		}
		if len(r.Scan.Result.Numbers) == 0 {
			sb.WriteString(emptyScanMessage(r.Scan) + "\n")
		}
		for _, n := range r.Scan.Result.Numbers {
			sb.WriteString(fmt.Sprintf("%s %s\n", GlyphNumber, vanity.Format(n)))
		}
	}

	if r.Commentary.Title != "" || r.Commentary.Text != "" {
		sb.WriteString("\n")
		if r.Commentary.Title != "" {
			sb.WriteString(r.Commentary.Title + "\n")
		}
		if text := strings.TrimSpace(r.Commentary.Text); text != "" {
			sb.WriteString(text + "\n")
		}
	}

	return sb.String()
}

func writeSection(sb *strings.Builder, s *recon.SectionResult) {
	if s.Title != "" {
		sb.WriteString(s.Title + "\n")
	}
	for _, l := range s.Lines {
		sb.WriteString(ResultLine(l) + "\n")
	}
}

// ResultLine renders one number check, e.g. "✅ 580-666-HOLY (5806664659) - AVAILABLE".
func ResultLine(l recon.Line) string {
	switch l.Result.Status {
	case recon.StatusAvailable:
		return fmt.Sprintf("%s %s (%s) - AVAILABLE", GlyphAvailable, l.Label, l.Number)
	case recon.StatusTaken:
		return fmt.Sprintf("%s %s (%s) - TAKEN", GlyphTaken, l.Label, l.Number)
	default:
		return fmt.Sprintf("%s %s (%s) - ERROR: %s", GlyphError, l.Label, l.Number, l.Result.Err)
	}
}

// PatternLine renders one prefix count; a count of -1 is shown as a failed query.
func PatternLine(pc recon.PatternCount) string {
	if pc.Count < 0 {
		return fmt.Sprintf("%s %s (%s) - query failed", GlyphError, pc.Label, pc.Prefix)
	}
	return fmt.Sprintf("%s %s (%s) - %d available", GlyphPattern, pc.Label, pc.Prefix, pc.Count)
}

func emptyScanMessage(s *recon.ScanSection) string {
	if s.Empty != "" {
		return s.Empty
	}
	return "No numbers currently available in " + formatPrefix(s.Result.Prefix)
}

// formatPrefix renders a 6-digit prefix as AAA-PPP-XXXX.
func formatPrefix(prefix string) string {
	if !vanity.IsPrefix(prefix) {
		return prefix
	}
	return fmt.Sprintf("%s-%s-XXXX", prefix[:3], prefix[3:])
}
