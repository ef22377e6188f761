package encrypter

// Encrypter seals short secrets with AES-GCM and hashes stored secrets with bcrypt.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashSecret(secret string) (string, error)
	CompareSecret(secret, hash string) bool
}

// New creates an Encrypter. key must be 16, 24 or 32 bytes.
func New(key string) (Encrypter, error) {
	aead, err := newAEAD([]byte(key))
	if err != nil {
		return nil, err
	}
	return &implEncrypter{aead: aead}, nil
}
