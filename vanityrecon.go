package vanityrecon

import (
	"context"
	"fmt"
	"time"

	"github.com/kataras/vanity-recon/pkg/config"
	"github.com/kataras/vanity-recon/pkg/formatter"
	"github.com/kataras/vanity-recon/pkg/recon"
	"github.com/kataras/vanity-recon/pkg/twilio"
	"github.com/kataras/vanity-recon/pkg/watchlist"
)

// ErrMissingCredentials is returned by Run when no Inventory is injected and the
// Twilio account SID or auth token is empty. It is the same sentinel config.Load
// wraps, so one errors.Is check covers both.
var ErrMissingCredentials = config.ErrMissingCredentials

// Options configures a report run.
type Options struct {
	AccountSID string
	AuthToken  string
	Country    string               // ISO country code, default "US"
	BaseURL    string               // Twilio API base URL, default https://api.twilio.com
	Timeout    time.Duration        // per request, default 30s
	Pacing     time.Duration        // delay between provider calls, default 700ms; negative disables
	Watchlist  *watchlist.Watchlist // nil = built-in watchlist
	Inventory  recon.Inventory      // overrides the Twilio client when set
	Logger     Logger               // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger = recon.Logger

// Result contains the report output.
type Result struct {
	Report   *recon.Report
	Text     string // terminal report
	Markdown string // same report as a markdown document
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run checks every number of the watchlist against the inventory, in order, and
// returns the formatted report. Failed lookups are part of the report; Run only
// fails when it cannot start.
func Run(ctx context.Context, opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Country == "" {
		opts.Country = "US"
	}
	if opts.Pacing == 0 {
		opts.Pacing = recon.DefaultPacing
	}

	wl := opts.Watchlist
	if wl == nil {
		var err error
		if wl, err = watchlist.Default(); err != nil {
			return nil, fmt.Errorf("load default watchlist: %w", err)
		}
	}

	inv := opts.Inventory
	if inv == nil {
		if opts.AccountSID == "" || opts.AuthToken == "" {
			return nil, fmt.Errorf("%w: account SID and auth token are required", ErrMissingCredentials)
		}
		opts.logInfo("Authenticating with Twilio as %s...", opts.AccountSID)
		inv = NewTwilioInventory(twilio.NewClient(opts.AccountSID, opts.AuthToken,
			twilio.WithBaseURL(opts.BaseURL),
			twilio.WithTimeout(opts.Timeout),
		))
	}

	reporter := recon.NewReporter(recon.Paced(inv, opts.Pacing),
		recon.WithCountry(opts.Country),
		recon.WithLogger(opts.Logger),
	)

	opts.logInfo("Running %d availability queries (%s apart)...", wl.Len(), opts.Pacing)
	report := reporter.Assemble(ctx, wl)

	st := report.Stats()
	opts.logInfo("Done: %d available, %d taken, %d errors", st.Available, st.Taken, st.Errors)

	return &Result{
		Report:   report,
		Text:     formatter.ToText(report),
		Markdown: formatter.ToMarkdown(report),
	}, nil
}

// twilioInventory adapts the Twilio client to recon.Inventory.
type twilioInventory struct {
	client *twilio.Client
}

// NewTwilioInventory returns a recon.Inventory backed by client. Numbers are
// returned in E.164 form, in provider order.
func NewTwilioInventory(client *twilio.Client) recon.Inventory {
	return &twilioInventory{client: client}
}

func (t *twilioInventory) AvailableLocal(ctx context.Context, q recon.Query) ([]string, error) {
	resp, err := t.client.ListAvailableLocal(ctx, q.Country, twilio.LocalParams{
		AreaCode:     q.AreaCode,
		Contains:     q.Contains,
		SMSEnabled:   q.SMSEnabled,
		VoiceEnabled: q.VoiceEnabled,
		PageSize:     q.Limit,
	})
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, len(resp.AvailablePhoneNumbers))
	for _, n := range resp.AvailablePhoneNumbers {
		numbers = append(numbers, n.PhoneNumber)
	}
	return numbers, nil
}
