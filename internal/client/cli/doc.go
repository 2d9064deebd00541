// Package cli provides the interactive admin console.
//
// It wires configuration, the local Token Store, the API services, global
// state, the router and the login flow, then runs a REPL in which console
// locations such as /admin/tickets play the role of pages. Protected
// locations go through the guard; a 401 from any protected call logs the
// user out and returns them to the login location.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the screen renderers for details.
package cli
