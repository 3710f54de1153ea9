package core

// PasswordHasher abstracts password hashing for admin credentials
type PasswordHasher interface {
	// Hash returns a one-way hash of the given plain-text password
	Hash(password string) (string, error)
	// Compare reports whether the plain-text password matches the stored hash
	Compare(hashed, password string) bool
}
