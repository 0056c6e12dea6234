package models

import "slices"

// Place is a rentable listing in a City, owned by a User.
type Place struct {
	Record `mapstructure:",squash"`

	CityID          string   `mapstructure:"city_id"`
	UserID          string   `mapstructure:"user_id"`
	Name            string   `mapstructure:"name"`
	Description     string   `mapstructure:"description"`
	NumberRooms     int      `mapstructure:"number_rooms"`
	NumberBathrooms int      `mapstructure:"number_bathrooms"`
	MaxGuest        int      `mapstructure:"max_guest"`
	PriceByNight    int      `mapstructure:"price_by_night"`
	Latitude        float64  `mapstructure:"latitude"`
	Longitude       float64  `mapstructure:"longitude"`
	AmenityIDs      []string `mapstructure:"amenity_ids"`
}

// newPlace returns a blank Place with its own empty AmenityIDs slice.
func newPlace() *Place {
	return &Place{AmenityIDs: []string{}}
}

// NewPlace returns a fresh Place registered with store.
func NewPlace(store Storage) *Place {
	return create(store, newPlace())
}

func (p *Place) Kind() string { return KindPlace }

func (p *Place) Attributes() map[string]any {
	attrs := p.Record.Attributes()
	attrs["city_id"] = p.CityID
	attrs["user_id"] = p.UserID
	attrs["name"] = p.Name
	attrs["description"] = p.Description
	attrs["number_rooms"] = p.NumberRooms
	attrs["number_bathrooms"] = p.NumberBathrooms
	attrs["max_guest"] = p.MaxGuest
	attrs["price_by_night"] = p.PriceByNight
	attrs["latitude"] = p.Latitude
	attrs["longitude"] = p.Longitude
	ids := slices.Clone(p.AmenityIDs)
	if ids == nil {
		ids = []string{}
	}
	attrs["amenity_ids"] = ids
	return attrs
}

func (p *Place) String() string { return describe(p) }
