package models

// State is a named state.
type State struct {
	Record `mapstructure:",squash"`

	Name string `mapstructure:"name"`
}

// NewState returns a fresh State registered with store.
func NewState(store Storage) *State {
	return create(store, &State{})
}

func (s *State) Kind() string { return KindState }

func (s *State) Attributes() map[string]any {
	attrs := s.Record.Attributes()
	attrs["name"] = s.Name
	return attrs
}

func (s *State) String() string { return describe(s) }
