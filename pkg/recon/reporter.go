package recon

import (
	"context"
	"fmt"

	"github.com/kataras/vanity-recon/pkg/vanity"
	"github.com/kataras/vanity-recon/pkg/watchlist"
)

// Status classifies a single number lookup.
type Status int

const (
	StatusAvailable Status = iota + 1
	StatusTaken
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusTaken:
		return "TAKEN"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// AvailabilityResult is the outcome of checking one number. MatchedNumber is set
// only when Status is StatusAvailable and Err only when it is StatusError.
type AvailabilityResult struct {
	Target        string
	Status        Status
	MatchedNumber string
	Err           string
}

// PrefixScanResult lists the numbers available in a prefix, in provider order.
type PrefixScanResult struct {
	Prefix  string
	Numbers []string
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Reporter checks number availability against an Inventory.
//
// Single-number checks surface provider failures as StatusError results while
// prefix scans and counts degrade to an empty list and -1 respectively. No
// method returns an error, so one failing lookup never stops a report.
type Reporter struct {
	inv     Inventory
	country string
	logger  Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithCountry sets the inventory country, "US" by default.
func WithCountry(country string) Option {
	return func(r *Reporter) {
		if country != "" {
			r.country = country
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(logger Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// NewReporter returns a Reporter querying inv.
func NewReporter(inv Inventory, opts ...Option) *Reporter {
	r := &Reporter{
		inv:     inv,
		country: vanity.DefaultRegion,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reporter) query(areaCode, contains string, limit int) Query {
	return Query{
		Country:      r.country,
		AreaCode:     areaCode,
		Contains:     contains,
		SMSEnabled:   true,
		VoiceEnabled: true,
		Limit:        limit,
	}
}

// CheckSingleNumber reports whether the 10-digit target can be provisioned.
func (r *Reporter) CheckSingleNumber(ctx context.Context, target string) (res AvailabilityResult) {
	res.Target = target

	if !vanity.IsNumber(target) {
		res.Status = StatusError
		res.Err = fmt.Sprintf("invalid number %q: want 10 digits", target)
		return res
	}

	r.logInfo("Checking %s...", target)
	numbers, err := r.lookup(ctx, r.query(vanity.AreaCode(target), target, 1))
	if err != nil {
		r.logWarn("Check of %s failed: %v", target, err)
		res.Status = StatusError
		res.Err = errorMessage(err)
		return res
	}

	if len(numbers) == 0 {
		res.Status = StatusTaken
		return res
	}

	res.Status = StatusAvailable
	res.MatchedNumber = numbers[0]
	return res
}

// ScanPrefix lists up to limit available numbers in the 6-digit prefix. A
// non-positive limit means watchlist.DefaultScanLimit. Failures yield an empty list.
func (r *Reporter) ScanPrefix(ctx context.Context, prefix string, limit int) PrefixScanResult {
	if limit <= 0 {
		limit = watchlist.DefaultScanLimit
	}

	res := PrefixScanResult{Prefix: prefix, Numbers: []string{}}

	r.logInfo("Scanning %s (limit %d)...", prefix, limit)
	numbers, err := r.lookup(ctx, r.query(vanity.AreaCode(prefix), prefix, limit))
	if err != nil {
		r.logWarn("Error fetching numbers for %s: %v", prefix, err)
		return res
	}

	if numbers != nil {
		res.Numbers = numbers
	}
	return res
}

// CountAvailableInPrefix counts available numbers in the 6-digit prefix, up to
// watchlist.DefaultScanLimit. It returns -1 when the lookup fails.
func (r *Reporter) CountAvailableInPrefix(ctx context.Context, prefix string) int {
	r.logInfo("Counting %s...", prefix)
	numbers, err := r.lookup(ctx, r.query(vanity.AreaCode(prefix), prefix, watchlist.DefaultScanLimit))
	if err != nil {
		r.logWarn("Count of %s failed: %v", prefix, err)
		return -1
	}
	return len(numbers)
}

// lookup calls the inventory, converting a provider panic into an error.
func (r *Reporter) lookup(ctx context.Context, q Query) (numbers []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("inventory panic: %v", p)
		}
	}()

	if r.inv == nil {
		return nil, fmt.Errorf("no inventory configured")
	}
	return r.inv.AvailableLocal(ctx, q)
}

// errorMessage returns the text of err, never empty.
func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("inventory query failed (%T)", err)
}

func (r *Reporter) logInfo(f string, a ...any) {
	if r.logger != nil {
		r.logger.Infof(f, a...)
	}
}

func (r *Reporter) logWarn(f string, a ...any) {
	if r.logger != nil {
		r.logger.Warnf(f, a...)
	}
}
