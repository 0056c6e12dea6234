package models

// City belongs to a State through StateID.
type City struct {
	Record `mapstructure:",squash"`

	StateID string `mapstructure:"state_id"`
	Name    string `mapstructure:"name"`
}

// NewCity returns a fresh City registered with store.
func NewCity(store Storage) *City {
	return create(store, &City{})
}

func (c *City) Kind() string { return KindCity }

func (c *City) Attributes() map[string]any {
	attrs := c.Record.Attributes()
	attrs["state_id"] = c.StateID
	attrs["name"] = c.Name
	return attrs
}

func (c *City) String() string { return describe(c) }
