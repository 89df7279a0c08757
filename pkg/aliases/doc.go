// Package aliases owns the alias map: short names pointing at URLs, stored in
// the [aliases] table of the TOML config file.
//
// The table is kept in document order. Aliases that already exist keep their
// position when rewritten and new aliases are appended, so anything that lists
// or completes aliases sees them in the order the user added them.
//
// Every read goes back to the file. Completion callbacks run as a fresh
// process per keystroke and the file may change between two of them, so
// nothing here caches across calls.
package aliases
