// Package serialize persists and restores the domain model as JSON
// documents keyed by an explicit "__type__" discriminator.
//
// Every persisted type gets an explicit pair of functions — toXDTO/fromXDTO
// plus a DumpX/LoadX wrapper — so there is no reflective field walk and no
// hidden post-load hook: a FreezedNetwork's derived state (its path sets) is
// recomputed by LoadFreezedNetwork calling network.Freeze directly.
package serialize

import "errors"

// ErrTypeMismatch indicates a document's "__type__" discriminator did not
// match the loader that was called on it.
var ErrTypeMismatch = errors.New("serialize: type discriminator mismatch")
