package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is a Storage that keeps registrations in a map and counts
// flushes.
type memStorage struct {
	objects map[string]Model
	saves   int
	err     error
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string]Model)}
}

func (s *memStorage) New(m Model) { s.objects[Key(m)] = m }

func (s *memStorage) Save() error {
	s.saves++
	return s.err
}

// freezeClock pins now to t for the rest of the test.
func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func TestNewRecord(t *testing.T) {
	store := newMemStorage()
	r := NewBaseModel(store)

	id, err := uuid.Parse(r.ID)
	require.NoError(t, err, "id must be a UUID")
	assert.Equal(t, uuid.Version(4), id.Version())
	assert.False(t, r.CreatedAt.IsZero())
	assert.True(t, r.CreatedAt.Equal(r.UpdatedAt), "fresh record has equal timestamps")
	assert.Equal(t, KindBaseModel, r.Kind())
	assert.Same(t, r, store.objects[KindBaseModel+"."+r.ID])
}

func TestNewRecordWithoutStorage(t *testing.T) {
	r := NewBaseModel(nil)
	assert.NotEmpty(t, r.ID)

	err := r.Save()
	assert.ErrorIs(t, err, ErrNoStorage)
}

func TestTimestampsAtMicrosecondResolution(t *testing.T) {
	r := NewBaseModel(newMemStorage())
	assert.Zero(t, r.CreatedAt.Nanosecond()%int(time.Microsecond))

	parsed, err := ParseTime(FormatTime(r.CreatedAt))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(r.CreatedAt), "formatting then parsing keeps the instant")
}

func TestSave(t *testing.T) {
	t.Run("one save moves updated_at forward", func(t *testing.T) {
		store := newMemStorage()
		r := NewBaseModel(store)
		created := r.CreatedAt
		first := r.UpdatedAt
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, r.Save())
		assert.True(t, r.UpdatedAt.After(first))
		assert.True(t, r.CreatedAt.Equal(created), "created_at must not change")
		assert.Equal(t, 1, store.saves)
	})

	t.Run("two saves keep moving forward", func(t *testing.T) {
		store := newMemStorage()
		r := NewBaseModel(store)
		first := r.UpdatedAt
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, r.Save())
		second := r.UpdatedAt
		assert.True(t, second.After(first))

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, r.Save())
		assert.True(t, r.UpdatedAt.After(second))
		assert.Equal(t, 2, store.saves)
	})

	t.Run("strictly increases within one clock tick", func(t *testing.T) {
		at := time.Date(2017, 1, 1, 0, 0, 0, 0, time.Local)
		freezeClock(t, at)

		r := NewBaseModel(newMemStorage())
		require.NoError(t, r.Save())
		assert.True(t, r.UpdatedAt.After(at))
		assert.True(t, r.CreatedAt.Equal(at))
	})

	t.Run("storage error is returned", func(t *testing.T) {
		store := newMemStorage()
		store.err = errors.New("disk full")
		r := NewBaseModel(store)

		err := r.Save()
		assert.ErrorIs(t, err, store.err)
	})
}

func TestToMapOutput(t *testing.T) {
	at := time.Date(2017, 9, 28, 21, 3, 54, 52298000, time.Local)
	s := NewState(newMemStorage())
	s.ID = "123456"
	s.CreatedAt = at
	s.UpdatedAt = at

	want := map[string]any{
		"id":         "123456",
		KindKey:      "State",
		"created_at": "2017-09-28T21:03:54.052298",
		"updated_at": "2017-09-28T21:03:54.052298",
		"name":       "",
	}
	assert.Equal(t, want, ToMap(s))
}

func TestToMapIsDetached(t *testing.T) {
	s := NewState(newMemStorage())
	s.Name = "California"
	require.NoError(t, Set(s, "motto", "Eureka"))

	out := ToMap(s)
	out["name"] = "Nevada"
	out["motto"] = "changed"
	out["extra"] = true

	assert.Equal(t, "California", s.Name)
	assert.Equal(t, "Eureka", s.Extra["motto"])
	assert.NotContains(t, s.Extra, "extra")
	assert.NotEqual(t, ToMap(s), s.Attributes(), "serialized form differs from the attributes")
}

func TestToMapTimestampsAreStrings(t *testing.T) {
	c := NewCity(newMemStorage())
	out := ToMap(c)

	assert.IsType(t, "", out[AttrID])
	assert.Equal(t, FormatTime(c.CreatedAt), out[AttrCreatedAt])
	assert.Equal(t, FormatTime(c.UpdatedAt), out[AttrUpdatedAt])
}

func TestExtraAttributes(t *testing.T) {
	s := NewState(newMemStorage())
	require.NoError(t, Set(s, "middle_name", "Holberton"))
	require.NoError(t, Set(s, "my_number", 98))

	v, ok := Get(s, "middle_name")
	require.True(t, ok)
	assert.Equal(t, "Holberton", v)

	out := ToMap(s)
	assert.Equal(t, "Holberton", out["middle_name"])
	assert.Equal(t, 98, out["my_number"])
}

func TestSetDeclaredField(t *testing.T) {
	p := NewPlace(newMemStorage())

	require.NoError(t, Set(p, "number_rooms", 4))
	require.NoError(t, Set(p, "latitude", 37.77))
	require.NoError(t, Set(p, "name", "Loft"))

	assert.Equal(t, 4, p.NumberRooms)
	assert.Equal(t, 37.77, p.Latitude)
	assert.Equal(t, "Loft", p.Name)
	assert.Empty(t, p.Extra, "declared fields never land in Extra")
}

func TestSetErrors(t *testing.T) {
	tests := []struct {
		name  string
		attr  string
		value any
	}{
		{name: "nil id", attr: "id", value: nil},
		{name: "nil created_at", attr: "created_at", value: nil},
		{name: "nil updated_at", attr: "updated_at", value: nil},
		{name: "numeric timestamp", attr: "created_at", value: 1234},
		{name: "unparseable timestamp", attr: "updated_at", value: "yesterday"},
		{name: "wrong type for int field", attr: "number_rooms", value: "many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlace(newMemStorage())
			err := Set(p, tt.attr, tt.value)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSetNil(t *testing.T) {
	c := NewCity(newMemStorage())
	c.Name = "x"
	require.NoError(t, Set(c, "motto", "Eureka"))

	require.NoError(t, Set(c, "name", nil))
	assert.Equal(t, "", c.Name, "a declared field goes back to its default")

	require.NoError(t, Set(c, "motto", nil))
	v, ok := Get(c, "motto")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestSetKindTagIsIgnored(t *testing.T) {
	c := NewCity(newMemStorage())
	require.NoError(t, Set(c, KindKey, "Place"))
	assert.Equal(t, KindCity, c.Kind())
	assert.NotContains(t, c.Extra, KindKey)
}

func TestString(t *testing.T) {
	at := time.Date(2017, 1, 1, 0, 0, 0, 0, time.Local)
	s := NewState(newMemStorage())
	s.ID = "123456"
	s.CreatedAt = at
	s.UpdatedAt = at

	str := s.String()
	assert.Contains(t, str, "[State] (123456) ")
	assert.Contains(t, str, "id:123456")
	assert.Contains(t, str, "created_at:"+at.String())
	assert.Contains(t, str, "updated_at:"+at.String())
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "six fractional digits",
			in:   "2017-01-01T00:00:00.000000",
			want: time.Date(2017, 1, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "no fractional part",
			in:   "2017-06-14T22:31:03",
			want: time.Date(2017, 6, 14, 22, 31, 3, 0, time.Local),
		},
		{
			name: "microseconds kept",
			in:   "2017-06-14T22:31:03.285259",
			want: time.Date(2017, 6, 14, 22, 31, 3, 285259000, time.Local),
		},
		{name: "empty", in: "", wantErr: true},
		{name: "date only", in: "2017-06-14", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
