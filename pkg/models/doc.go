// Package models defines the record kinds persisted by the hbnb store, the
// kind registry used to rebuild them from their serialized form, and the
// Storage interface a record uses to register and flush itself.
//
// Every kind embeds Record, which carries the identity and timestamps.
// Kinds are flat attribute sets; their defaults come from the kind's
// constructor, so assigning a field on one instance never changes what
// another instance or a later instance sees.
package models
