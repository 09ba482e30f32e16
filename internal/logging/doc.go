// Package logging wraps zerolog behind a small Logger interface. Entries are
// JSON lines tagged with a component name.
package logging
