// Package session implements the client's account and session service.
//
// One Store instance manages a small durable collection of accounts (backed
// by an accounts.Repository) and a process-lifetime session flag. The whole
// collection is read on every operation and rewritten in full on every
// change; a single mutex serializes these read-modify-write cycles so two
// concurrent registrations cannot lose an append.
//
// Operations deliberately report only success or failure. Storage problems
// are logged and swallowed: a failed read behaves like an empty collection,
// a failed write is dropped.
package session
