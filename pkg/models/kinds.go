package models

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Registered kind names. These are the values of KindKey in serialized
// records.
const (
	KindBaseModel = "BaseModel"
	KindUser      = "User"
	KindState     = "State"
	KindCity      = "City"
	KindAmenity   = "Amenity"
	KindPlace     = "Place"
	KindReview    = "Review"
)

// Constructor returns a blank instance of a kind carrying the kind's
// default field values. It assigns no identity and registers nothing.
type Constructor func() Model

// registry maps kind names to constructors. Rebuilding a record from its
// kind tag goes through here and nowhere else.
var registry = map[string]Constructor{
	KindBaseModel: func() Model { return &Record{} },
	KindUser:      func() Model { return &User{} },
	KindState:     func() Model { return &State{} },
	KindCity:      func() Model { return &City{} },
	KindAmenity:   func() Model { return &Amenity{} },
	KindPlace:     func() Model { return newPlace() },
	KindReview:    func() Model { return &Review{} },
}

// Register adds a kind to the registry. It fails if name is empty, ctor is
// nil, or the name is already taken.
func Register(name string, ctor Constructor) error {
	if name == "" || ctor == nil {
		return fmt.Errorf("%w: kind needs a name and a constructor", ErrInvalidArgument)
	}
	if _, ok := registry[name]; ok {
		return fmt.Errorf("%w: kind %q already registered", ErrInvalidArgument, name)
	}
	registry[name] = ctor
	return nil
}

// Lookup returns the constructor registered for name.
func Lookup(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return ctor, nil
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a fresh record of the named kind, registered with store.
func New(store Storage, kind string) (Model, error) {
	ctor, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return create(store, ctor()), nil
}

// FromMap rebuilds a record of the named kind from an attribute mapping.
// The kind tag is ignored, timestamps are parsed from ISO-8601 strings and
// keys outside the declared fields land in Extra. The record is attached
// to store but not registered with it. An empty mapping behaves like New.
//
// An explicit nil for id, created_at or updated_at is rejected with
// ErrInvalidArgument. An absent id is generated. An absent created_at
// takes updated_at when that is given, and the current time otherwise; an
// absent updated_at takes created_at.
func FromMap(store Storage, kind string, attrs map[string]any) (Model, error) {
	if len(attrs) == 0 {
		return New(store, kind)
	}
	ctor, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if err := checkBase(attrs); err != nil {
		return nil, err
	}

	fields := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if k == KindKey {
			continue
		}
		fields[k] = v
	}

	m := ctor()
	if err := decode(fields, m); err != nil {
		return nil, fmt.Errorf("rebuilding %s: %w", kind, err)
	}

	r := m.Base()
	r.store = store
	if _, ok := fields[AttrID]; !ok {
		r.ID = uuid.NewString()
	}
	_, hasCreated := fields[AttrCreatedAt]
	_, hasUpdated := fields[AttrUpdatedAt]
	switch {
	case !hasCreated && hasUpdated:
		r.CreatedAt = r.UpdatedAt
	case !hasCreated:
		r.CreatedAt = now()
	}
	if !hasUpdated {
		r.UpdatedAt = r.CreatedAt
	}
	return m, nil
}

// Set assigns the named attribute on m. Declared fields are decoded into
// their typed slot; any other name is stored in Extra. A nil value resets
// a declared field to its kind default. Setting the kind tag is a no-op.
func Set(m Model, name string, value any) error {
	if name == KindKey {
		return nil
	}
	attrs := map[string]any{name: value}
	if err := checkBase(attrs); err != nil {
		return err
	}
	if value == nil {
		return unset(m, name)
	}
	return decode(attrs, m)
}

// unset restores a declared field to its kind default, or records an
// explicit nil for an extra attribute.
func unset(m Model, name string) error {
	def, err := Default(m.Kind(), name)
	if err != nil {
		r := m.Base()
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[name] = nil
		return nil
	}
	return decodeFresh(map[string]any{name: def}, m)
}

// Default returns the kind-level default of a field: the value a fresh
// instance of kind holds before anything assigns to it.
func Default(kind, field string) (any, error) {
	ctor, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	v, ok := ctor().Attributes()[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrInvalidArgument, kind, field)
	}
	return v, nil
}
