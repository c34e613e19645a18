package vault

// Vault holds opaque payloads by ID.
type Vault interface {
	Import(ID string, data []byte) error
	Get(ID string) ([]byte, error)
	Delete(ID string) error
	DeletePrefix(prefix string) error
}
