package models

// User is an account holder. Every field defaults to "".
type User struct {
	Record `mapstructure:",squash"`

	Email     string `mapstructure:"email"`
	Password  string `mapstructure:"password"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
}

// NewUser returns a fresh User registered with store.
func NewUser(store Storage) *User {
	return create(store, &User{})
}

func (u *User) Kind() string { return KindUser }

func (u *User) Attributes() map[string]any {
	attrs := u.Record.Attributes()
	attrs["email"] = u.Email
	attrs["password"] = u.Password
	attrs["first_name"] = u.FirstName
	attrs["last_name"] = u.LastName
	return attrs
}

func (u *User) String() string { return describe(u) }
