// Package cli implements the interactive admin console. It wires the HTTP
// gateway, the session store and the entity stores together and drives them
// from a line-oriented REPL.
package cli
