package models

// Amenity is something a Place can offer.
type Amenity struct {
	Record `mapstructure:",squash"`

	Name string `mapstructure:"name"`
}

// NewAmenity returns a fresh Amenity registered with store.
func NewAmenity(store Storage) *Amenity {
	return create(store, &Amenity{})
}

func (a *Amenity) Kind() string { return KindAmenity }

func (a *Amenity) Attributes() map[string]any {
	attrs := a.Record.Attributes()
	attrs["name"] = a.Name
	return attrs
}

func (a *Amenity) String() string { return describe(a) }
