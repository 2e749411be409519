// Package metadata is the client's local key/value storage: a single SQLite
// table of (key, value) rows. It backs the session snapshot and plays the
// role of getItem/setItem/removeItem for the rest of the client.
package metadata
