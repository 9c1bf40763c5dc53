// Package cli provides the interactive AgroVest command-line client.
//
// It wires configuration, local storage, the session store, and the
// weather/diagnosis services into an interactive REPL. Typical flow: seed the
// local account collection, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the local session store
//   - whoami: show the logged-in profile
//   - weather: current conditions and forecast, with demo-data fallback
//   - diagnose: crop-disease analysis of a leaf image
//   - offers: the static investment catalog
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
