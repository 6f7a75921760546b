package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/vanity-recon/pkg/recon"
	"github.com/kataras/vanity-recon/pkg/vanity"
)

// ToMarkdown renders a report as a markdown document with one table per section,
// suitable for saving next to the terminal output.
func ToMarkdown(r *recon.Report) string {
	var sb strings.Builder

	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = "Phone Number Reconnaissance Report"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	st := r.Stats()
	sb.WriteString(fmt.Sprintf("- **Available**: %d\n- **Taken**: %d\n- **Errors**: %d\n\n", st.Available, st.Taken, st.Errors))

	if r.Flagship != nil {
		writeSectionTable(&sb, r.Flagship)
	}
	for i := range r.Sections {
		writeSectionTable(&sb, &r.Sections[i])
	}

	if r.Patterns != nil && len(r.Patterns.Counts) > 0 {
		sb.WriteString(fmt.Sprintf("## %s\n\n", headingText(r.Patterns.Title, "Exchange Patterns")))
		sb.WriteString("| Pattern | Prefix | Available |\n")
		sb.WriteString("|---------|--------|-----------|\n")
		for _, pc := range r.Patterns.Counts {
			count := fmt.Sprintf("%d", pc.Count)
			if pc.Count < 0 {
				count = "query failed"
			}
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s |\n", escapeCell(pc.Label), pc.Prefix, count))
		}
		sb.WriteString("\n")
	}

	if r.Scan != nil {
		sb.WriteString(fmt.Sprintf("## %s\n\n", headingText(r.Scan.Title, "Available Numbers")))
		if len(r.Scan.Result.Numbers) == 0 {
			sb.WriteString(emptyScanMessage(r.Scan) + "\n")
		}
		for _, n := range r.Scan.Result.Numbers {
			sb.WriteString(fmt.Sprintf("- `%s`\n", vanity.Format(n)))
		}
		sb.WriteString("\n")
	}

	if text := strings.TrimSpace(r.Commentary.Text); text != "" {
		sb.WriteString(fmt.Sprintf("## %s\n\n", headingText(r.Commentary.Title, "Commentary")))
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString("> " + line + "\n")
		}
	}

	return sb.String()
}

func writeSectionTable(sb *strings.Builder, s *recon.SectionResult) {
	if len(s.Lines) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("## %s\n\n", headingText(s.Title, "Numbers")))
	sb.WriteString("| Number | Digits | Status | Detail |\n")
	sb.WriteString("|--------|--------|--------|--------|\n")
	for _, l := range s.Lines {
		detail := ""
		switch l.Result.Status {
		case recon.StatusAvailable:
			detail = vanity.Format(l.Result.MatchedNumber)
		case recon.StatusError:
			detail = escapeCell(l.Result.Err)
		}
		sb.WriteString(fmt.Sprintf("| %s | `%s` | %s | %s |\n", escapeCell(l.Label), l.Number, l.Result.Status, detail))
	}
	sb.WriteString("\n")
}

// escapeCell keeps s inside a single table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// headingText strips the trailing colon of report titles, falling back to def.
func headingText(title, def string) string {
	title = strings.TrimSuffix(strings.TrimSpace(title), ":")
	if title == "" {
		return def
	}
	return title
}
