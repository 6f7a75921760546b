// Package vanityrecon checks whether vanity phone numbers, and blocks of numbers
// sharing an exchange prefix, can currently be provisioned from Twilio's number
// inventory, and produces a formatted reconnaissance report.
//
// The CLI lives in cmd/vanity-recon; this root package exposes the same
// pipeline as a Go API so that callers can embed the checks in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named vanityrecon:
//
//	import "github.com/kataras/vanity-recon" // package vanityrecon
//
// # Quick start
//
//	result, err := vanityrecon.Run(ctx, vanityrecon.Options{
//	    AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
//	    AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Text)
//
// # Watchlists
//
// The numbers to check are data, not code. [Options.Watchlist] accepts any
// watchlist loaded with watchlist.Load; a nil Watchlist uses the built-in one.
// Entries may give a vanity string only ("580-666-HOLY"), in which case the
// number is derived with vanity.Translate.
//
// # Errors
//
// A failing lookup never aborts a run. Single-number checks report the provider
// error inline, while prefix scans report no numbers and prefix counts report -1.
// Run itself only fails before the first query, e.g. with [ErrMissingCredentials].
//
// # Testing
//
// Set [Options.Inventory] to any recon.Inventory to run a report without
// network access.
package vanityrecon
