package interfaces

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) bool
}
