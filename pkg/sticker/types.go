package sticker

import internalsticker "github.com/goliatone/go-resistags/internal/sticker"

// Size re-exports the physical sticker size.
type Size = internalsticker.Size

// Instance re-exports one generated sticker subtree plus metadata.
type Instance = internalsticker.Instance

// Params re-exports the per-sticker build inputs.
type Params = internalsticker.Params

// Builder re-exports the sticker builder.
type Builder = internalsticker.Builder

// NewBuilder re-exports the builder constructor.
var NewBuilder = internalsticker.NewBuilder
