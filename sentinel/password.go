package sentinel

// Password holds an optional redis secret. The zero value is the absent
// password, which is not the same as a password set to the empty string.
type Password struct {
	value string
	set   bool
}

// NoPassword returns the absent password.
func NoPassword() Password {
	return Password{}
}

// NewPassword returns a password set to the given secret.
func NewPassword(secret string) Password {
	return Password{value: secret, set: true}
}

// IsSet returns whether the password carries a secret.
func (p Password) IsSet() bool {
	return p.set
}

// Get returns the secret and whether one was set at all.
func (p Password) Get() (string, bool) {
	return p.value, p.set
}
