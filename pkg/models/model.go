package models

import "errors"

// KindKey is the reserved attribute naming a record's kind in its
// serialized form. It is metadata, never a field.
const KindKey = "__class__"

// Base attribute names shared by every kind.
const (
	AttrID        = "id"
	AttrCreatedAt = "created_at"
	AttrUpdatedAt = "updated_at"
)

// Model is implemented by every record kind.
type Model interface {
	// Kind returns the registered kind name, e.g. "City".
	Kind() string

	// Base returns the embedded Record.
	Base() *Record

	// Attributes returns a fresh map of the instance attributes. Timestamps
	// are time.Time values; ToMap renders them as strings.
	Attributes() map[string]any

	// Save refreshes UpdatedAt and flushes the attached storage.
	Save() error

	String() string
}

// Storage is the engine a record registers with on construction and
// flushes through on Save.
type Storage interface {
	New(m Model)
	Save() error
}

// Record errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownKind     = errors.New("unknown kind")
	ErrNoStorage       = errors.New("record has no storage attached")
)

// Key returns the composite registry key "<Kind>.<id>".
func Key(m Model) string {
	return KeyOf(m.Kind(), m.Base().ID)
}

// KeyOf builds a composite registry key from its parts.
func KeyOf(kind, id string) string {
	return kind + "." + id
}

// ToMap returns the serialized form of m: every attribute, the two
// timestamps as ISO-8601 strings, and the kind tag under KindKey.
// The result shares no map with the instance.
func ToMap(m Model) map[string]any {
	out := m.Attributes()
	r := m.Base()
	out[AttrCreatedAt] = FormatTime(r.CreatedAt)
	out[AttrUpdatedAt] = FormatTime(r.UpdatedAt)
	out[KindKey] = m.Kind()
	return out
}

// Get returns the named attribute of m, declared or extra.
func Get(m Model, name string) (any, bool) {
	v, ok := m.Attributes()[name]
	return v, ok
}
