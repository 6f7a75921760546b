package formatter

import (
	"strings"
	"testing"

	"github.com/kataras/vanity-recon/pkg/recon"
	"github.com/kataras/vanity-recon/pkg/watchlist"
)

func sampleReport() *recon.Report {
	return &recon.Report{
		Title: "🕷️ PHONE NUMBER RECONNAISSANCE REPORT",
		Flagship: &recon.SectionResult{
			Title: "CHECKING HELL'S LINE:",
			Lines: []recon.Line{
				{Label: "580-777-HELL", Number: "5807774355", Result: recon.AvailabilityResult{Target: "5807774355", Status: recon.StatusTaken}},
			},
		},
		Sections: []recon.SectionResult{
			{
				Title: "TIER 1: SACRED SUBVERSION",
				Lines: []recon.Line{
					{Label: "580-666-HOLY", Number: "5806664659", Result: recon.AvailabilityResult{Status: recon.StatusAvailable, MatchedNumber: "+15806664659"}},
					{Label: "580-666-PRAY", Number: "5806667729", Result: recon.AvailabilityResult{Status: recon.StatusError, Err: "HTTP 500 | upstream"}},
				},
			},
		},
		Patterns: &recon.PatternSection{
			Title: "TIER 2 PATTERN EXCHANGES",
			Counts: []recon.PatternCount{
				{Label: "580-777-XXXX", Prefix: "580777", Count: 3},
				{Label: "580-888-XXXX", Prefix: "580888", Count: -1},
			},
		},
		Scan: &recon.ScanSection{
			Title:  "AVAILABLE 666 EXCHANGE NUMBERS:",
			Result: recon.PrefixScanResult{Prefix: "580666", Numbers: []string{"+15806660001", "5806669999"}},
		},
		Commentary: watchlist.Commentary{Title: "PSYCHOLOGICAL IMPACT ASSESSMENT:", Text: "line one\nline two\n"},
	}
}

func TestToText(t *testing.T) {
	got := ToText(sampleReport())

	want := `
🕷️ PHONE NUMBER RECONNAISSANCE REPORT
=============================================

CHECKING HELL'S LINE:
❌ 580-777-HELL (5807774355) - TAKEN

TIER 1: SACRED SUBVERSION
✅ 580-666-HOLY (5806664659) - AVAILABLE
⚠️  580-666-PRAY (5806667729) - ERROR: HTTP 500 | upstream

TIER 2 PATTERN EXCHANGES
🔢 580-777-XXXX (580777) - 3 available
⚠️  580-888-XXXX (580888) - query failed

AVAILABLE 666 EXCHANGE NUMBERS:
📞 580-666-0001
📞 580-666-9999

PSYCHOLOGICAL IMPACT ASSESSMENT:
line one
line two
`
	if got != want {
		t.Errorf("ToText() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestToTextEmptyScan(t *testing.T) {
	tests := []struct {
		name  string
		empty string
		want  string
	}{
		{
			name:  "watchlist message",
			empty: "No numbers currently available in 666 exchange",
			want:  "No numbers currently available in 666 exchange\n",
		},
		{
			name: "default message",
			want: "No numbers currently available in 580-666-XXXX\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recon.Report{Scan: &recon.ScanSection{
				Empty:  tt.empty,
				Result: recon.PrefixScanResult{Prefix: "580666", Numbers: []string{}},
			}}
			got := ToText(r)
			if !strings.HasSuffix(got, tt.want) {
				t.Errorf("ToText() = %q, want suffix %q", got, tt.want)
			}
			if strings.Contains(got, GlyphNumber) {
				t.Errorf("ToText() listed numbers for an empty scan: %q", got)
			}
		})
	}
}

func TestResultLine(t *testing.T) {
	tests := []struct {
		name string
		line recon.Line
		want string
	}{
		{
			name: "available",
			line: recon.Line{Label: "580-666-GATE", Number: "5806664283", Result: recon.AvailabilityResult{Status: recon.StatusAvailable}},
			want: "✅ 580-666-GATE (5806664283) - AVAILABLE",
		},
		{
			name: "taken",
			line: recon.Line{Label: "580-THE-GATE", Number: "5808434283", Result: recon.AvailabilityResult{Status: recon.StatusTaken}},
			want: "❌ 580-THE-GATE (5808434283) - TAKEN",
		},
		{
			name: "error",
			line: recon.Line{Label: "580-666-REAL", Number: "5806667325", Result: recon.AvailabilityResult{Status: recon.StatusError, Err: "timeout"}},
			want: "⚠️  580-666-REAL (5806667325) - ERROR: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResultLine(tt.line); got != tt.want {
				t.Errorf("ResultLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToMarkdown(t *testing.T) {
	got := ToMarkdown(sampleReport())

	for _, want := range []string{
		"# 🕷️ PHONE NUMBER RECONNAISSANCE REPORT\n",
		"- **Available**: 1\n- **Taken**: 1\n- **Errors**: 1\n",
		"## CHECKING HELL'S LINE\n",
		"| 580-666-HOLY | `5806664659` | AVAILABLE | 580-666-4659 |\n",
		"| 580-666-PRAY | `5806667729` | ERROR | HTTP 500 \\| upstream |\n",
		"| 580-888-XXXX | `580888` | query failed |\n",
		"## AVAILABLE 666 EXCHANGE NUMBERS\n",
		"- `580-666-0001`\n",
		"## PSYCHOLOGICAL IMPACT ASSESSMENT\n\n> line one\n> line two\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ToMarkdown() missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestToMarkdownEscapesLabels(t *testing.T) {
	r := &recon.Report{
		Sections: []recon.SectionResult{{
			Title: "PIPES",
			Lines: []recon.Line{
				{Label: "HOLY | PRAY", Number: "5806664659", Result: recon.AvailabilityResult{Status: recon.StatusTaken}},
			},
		}},
		Patterns: &recon.PatternSection{
			Counts: []recon.PatternCount{{Label: "777|888", Prefix: "580777", Count: 0}},
		},
	}

	got := ToMarkdown(r)

	for _, want := range []string{
		"| HOLY \\| PRAY | `5806664659` | TAKEN |  |\n",
		"| 777\\|888 | `580777` | 0 |\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ToMarkdown() missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestHeadingText(t *testing.T) {
	tests := []struct {
		title string
		def   string
		want  string
	}{
		{"AVAILABLE 666 EXCHANGE NUMBERS:", "x", "AVAILABLE 666 EXCHANGE NUMBERS"},
		{"  ", "Numbers", "Numbers"},
		{"TIER 1: SACRED SUBVERSION", "x", "TIER 1: SACRED SUBVERSION"},
	}

	for _, tt := range tests {
		if got := headingText(tt.title, tt.def); got != tt.want {
			t.Errorf("headingText(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
