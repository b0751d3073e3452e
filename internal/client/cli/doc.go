// Package cli provides the interactive vending marketplace client.
//
// It wires configuration, the local credential database, the API client and
// the session state, then runs a REPL. On start the stored credential, if
// any, is used to restore the previous session.
//
// Commands:
//   - signup / login / logout / whoami
//   - list / show
//   - add / update / delete (sellers)
//   - buy / deposit / reset (buyers)
//   - refresh
//
// Input is validated before anything is sent. Failures, local or remote, are
// printed once and the REPL keeps going. A background watcher polls the
// backend's health endpoint and shows online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
