package models

// Review is a User's text about a Place.
type Review struct {
	Record `mapstructure:",squash"`

	PlaceID string `mapstructure:"place_id"`
	UserID  string `mapstructure:"user_id"`
	Text    string `mapstructure:"text"`
}

// NewReview returns a fresh Review registered with store.
func NewReview(store Storage) *Review {
	return create(store, &Review{})
}

func (r *Review) Kind() string { return KindReview }

func (r *Review) Attributes() map[string]any {
	attrs := r.Record.Attributes()
	attrs["place_id"] = r.PlaceID
	attrs["user_id"] = r.UserID
	attrs["text"] = r.Text
	return attrs
}

func (r *Review) String() string { return describe(r) }
