// Package cli provides the interactive userboard terminal client.
//
// It wires configuration, the local session database, the REST API client,
// and a REPL over the user-management dashboard. Typical flow: resolve the
// stored session at startup, then execute user commands.
//
// Commands:
//   - register / login / logout / whoami
//   - list [page], next, prev: paginated user table
//   - show <id>
//   - create, edit <id>, delete <id>: role-gated, admins act on anyone,
//     everyone else only on their own account
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
