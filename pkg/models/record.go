package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the ISO-8601 form timestamps take in serialized records.
const TimeLayout = "2006-01-02T15:04:05.000000"

// Record is the base shape shared by every kind. On its own it is the
// "BaseModel" kind.
type Record struct {
	ID        string    `mapstructure:"id"`
	CreatedAt time.Time `mapstructure:"created_at"`
	UpdatedAt time.Time `mapstructure:"updated_at"`

	// Extra holds attributes outside the kind's declared fields.
	Extra map[string]any `mapstructure:",remain"`

	store Storage `mapstructure:"-"`
}

// now returns the current local time at microsecond resolution, without
// a monotonic reading so it compares equal to its parsed string form.
var now = func() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses an ISO-8601 timestamp as written by FormatTime. The
// fractional part is optional.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parsing timestamp %q: %v", ErrInvalidArgument, s, err)
	}
	return t, nil
}

// NewBaseModel returns a fresh BaseModel record registered with store.
func NewBaseModel(store Storage) *Record {
	return create(store, &Record{})
}

// create assigns identity and timestamps to m and registers it.
func create[T Model](store Storage, m T) T {
	r := m.Base()
	t := now()
	r.ID = uuid.NewString()
	r.CreatedAt = t
	r.UpdatedAt = t
	r.store = store
	if store != nil {
		store.New(m)
	}
	return m
}

// Kind returns KindBaseModel. Every other kind overrides it.
func (r *Record) Kind() string { return KindBaseModel }

// Base returns r.
func (r *Record) Base() *Record { return r }

// Attributes returns a fresh map holding the extra attributes plus the id
// and both timestamps.
func (r *Record) Attributes() map[string]any {
	attrs := make(map[string]any, len(r.Extra)+3)
	for k, v := range r.Extra {
		attrs[k] = v
	}
	attrs[AttrID] = r.ID
	attrs[AttrCreatedAt] = r.CreatedAt
	attrs[AttrUpdatedAt] = r.UpdatedAt
	return attrs
}

// Save moves UpdatedAt forward and flushes the whole registry through the
// attached storage. UpdatedAt strictly increases on every call.
func (r *Record) Save() error {
	t := now()
	if !t.After(r.UpdatedAt) {
		t = r.UpdatedAt.Add(time.Microsecond)
	}
	r.UpdatedAt = t
	if r.store == nil {
		return ErrNoStorage
	}
	return r.store.Save()
}

func (r *Record) String() string { return describe(r) }

// describe renders "[<Kind>] (<id>) <attributes>".
func describe(m Model) string {
	return fmt.Sprintf("[%s] (%s) %v", m.Kind(), m.Base().ID, m.Attributes())
}
