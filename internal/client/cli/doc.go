// Package cli provides the interactive dsaccounts command-line client.
//
// It wires configuration, the local store, the authentication service and
// the form handler behind a small REPL. Each command fills one of the two
// forms field by field and submits it; the outcome is printed as the form's
// message, and a successful submission moves the client to the landing page
// and prints the dashboard of the signed-in account.
//
// Commands:
//   - signup | register   fill and submit the sign-up form
//   - signin | login      fill and submit the sign-in form
//   - whoami              show the dashboard of the current account
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
