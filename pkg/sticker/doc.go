// Package sticker re-exports the sticker instantiation types from
// internal/sticker for external callers.
package sticker
