package watchlist

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/kataras/vanity-recon/pkg/vanity"
)

// DefaultScanLimit is the number of results requested when scanning a prefix.
const DefaultScanLimit = 20

//go:embed default.toml
var defaultTOML []byte

// VanityEntry is a single number to check. Number is the 10-digit resolved number;
// when omitted in the data file it is derived from Vanity.
type VanityEntry struct {
	Label  string `toml:"label" validate:"required"`
	Vanity string `toml:"vanity"`
	Number string `toml:"number" validate:"len=10,number"`
}

// PrefixEntry is a 6-digit area code + exchange block.
type PrefixEntry struct {
	Label  string `toml:"label" validate:"required"`
	Prefix string `toml:"prefix" validate:"len=6,number"`
}

// Section is a titled, ordered group of numbers checked one by one.
type Section struct {
	Title   string        `toml:"title"`
	Entries []VanityEntry `toml:"entries" validate:"dive"`
}

// PatternSection is a titled, ordered group of prefixes whose availability is counted.
type PatternSection struct {
	Title   string        `toml:"title"`
	Entries []PrefixEntry `toml:"entries" validate:"dive"`
}

// ScanTarget is the prefix whose available numbers are listed in full.
// An empty Prefix disables the scan.
type ScanTarget struct {
	Title  string `toml:"title"`
	Prefix string `toml:"prefix" validate:"omitempty,len=6,number"`
	Limit  int    `toml:"limit" validate:"gte=0,lte=1000"`
	Empty  string `toml:"empty"`
}

// Commentary is the free text printed at the end of the report.
type Commentary struct {
	Title string `toml:"title"`
	Text  string `toml:"text"`
}

// Watchlist is the hand-curated set of numbers and prefixes a report is built from.
type Watchlist struct {
	Title      string         `toml:"title"`
	Flagship   Section        `toml:"flagship"`
	Sections   []Section      `toml:"sections" validate:"dive"`
	Patterns   PatternSection `toml:"patterns"`
	Scan       ScanTarget     `toml:"scan"`
	Commentary Commentary     `toml:"commentary"`
}

var validate = validator.New()

// Default returns the built-in watchlist.
func Default() (*Watchlist, error) {
	return Parse(defaultTOML)
}

// Load reads and parses a watchlist TOML file.
func Load(path string) (*Watchlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("watchlist: read %q: %w", path, err)
	}

	wl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

// Parse decodes, normalizes and validates a watchlist document.
func Parse(data []byte) (*Watchlist, error) {
	var wl Watchlist
	if err := toml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("watchlist: decode: %w", err)
	}

	wl.normalize()

	if err := wl.Validate(); err != nil {
		return nil, err
	}
	return &wl, nil
}

func (wl *Watchlist) normalize() {
	normalizeSection(&wl.Flagship)
	for i := range wl.Sections {
		normalizeSection(&wl.Sections[i])
	}

	for i := range wl.Patterns.Entries {
		e := &wl.Patterns.Entries[i]
		if e.Label == "" {
			e.Label = e.Prefix
		}
	}

	if wl.Scan.Limit == 0 {
		wl.Scan.Limit = DefaultScanLimit
	}
}

func normalizeSection(s *Section) {
	for i := range s.Entries {
		e := &s.Entries[i]
		if e.Number == "" {
			e.Number = vanity.Translate(e.Vanity)
		}
		if e.Label == "" {
			e.Label = e.Vanity
		}
		if e.Label == "" {
			e.Label = e.Number
		}
	}
}

// Validate checks that every resolved number has 10 digits and every prefix 6.
func (wl *Watchlist) Validate() error {
	err := validate.Struct(wl)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("watchlist: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%q fails %q", strings.TrimPrefix(fe.Namespace(), "Watchlist."), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("watchlist: invalid: %s", strings.Join(msgs, "; "))
}

// Len returns the number of provider queries a report over this watchlist issues.
func (wl *Watchlist) Len() int {
	n := len(wl.Flagship.Entries) + len(wl.Patterns.Entries)
	for _, s := range wl.Sections {
		n += len(s.Entries)
	}
	if wl.Scan.Prefix != "" {
		n++
	}
	return n
}
