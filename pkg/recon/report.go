package recon

import (
	"context"

	"github.com/kataras/vanity-recon/pkg/watchlist"
)

// Line is the result of checking one watchlist entry.
type Line struct {
	Label  string
	Number string
	Result AvailabilityResult
}

// SectionResult holds the lines of one titled watchlist section, in order.
type SectionResult struct {
	Title string
	Lines []Line
}

// PatternCount is the number of available numbers in one prefix, -1 on failure.
type PatternCount struct {
	Label  string
	Prefix string
	Count  int
}

// ScanSection is the full listing of one prefix.
type ScanSection struct {
	Title  string
	Empty  string // printed when no numbers are found
	Result PrefixScanResult
}

// Report is the assembled outcome of a watchlist run.
type Report struct {
	Title      string
	Flagship   *SectionResult
	Sections   []SectionResult
	Patterns   *PatternSection
	Scan       *ScanSection
	Commentary watchlist.Commentary
}

// PatternSection holds the per-prefix counts of the watchlist patterns.
type PatternSection struct {
	Title  string
	Counts []PatternCount
}

// Stats summarizes the single-number checks of a report.
type Stats struct {
	Available int
	Taken     int
	Errors    int
}

// Stats counts the single-number outcomes across the flagship and all sections.
func (r *Report) Stats() Stats {
	var st Stats
	count := func(s *SectionResult) {
		for _, l := range s.Lines {
			switch l.Result.Status {
			case StatusAvailable:
				st.Available++
			case StatusTaken:
				st.Taken++
			case StatusError:
				st.Errors++
			}
		}
	}

	if r.Flagship != nil {
		count(r.Flagship)
	}
	for i := range r.Sections {
		count(&r.Sections[i])
	}
	return st
}

// Assemble runs every lookup of wl in order: the flagship checks, each section's
// checks, the pattern counts and finally the prefix scan. Empty parts are skipped.
func (r *Reporter) Assemble(ctx context.Context, wl *watchlist.Watchlist) *Report {
	rep := &Report{
		Title:      wl.Title,
		Commentary: wl.Commentary,
	}

	if len(wl.Flagship.Entries) > 0 {
		flagship := r.checkSection(ctx, wl.Flagship)
		rep.Flagship = &flagship
	}

	for _, s := range wl.Sections {
		rep.Sections = append(rep.Sections, r.checkSection(ctx, s))
	}

	if len(wl.Patterns.Entries) > 0 {
		ps := &PatternSection{Title: wl.Patterns.Title}
		for _, e := range wl.Patterns.Entries {
			ps.Counts = append(ps.Counts, PatternCount{
				Label:  e.Label,
				Prefix: e.Prefix,
				Count:  r.CountAvailableInPrefix(ctx, e.Prefix),
			})
		}
		rep.Patterns = ps
	}

	if wl.Scan.Prefix != "" {
		rep.Scan = &ScanSection{
			Title:  wl.Scan.Title,
			Empty:  wl.Scan.Empty,
			Result: r.ScanPrefix(ctx, wl.Scan.Prefix, wl.Scan.Limit),
		}
	}

	return rep
}

func (r *Reporter) checkSection(ctx context.Context, s watchlist.Section) SectionResult {
	out := SectionResult{Title: s.Title, Lines: make([]Line, 0, len(s.Entries))}
	for _, e := range s.Entries {
		out.Lines = append(out.Lines, Line{
			Label:  e.Label,
			Number: e.Number,
			Result: r.CheckSingleNumber(ctx, e.Number),
		})
	}
	return out
}
