package vault

import "github.com/mr-shifu/sss-lib/pkg/common/vault"

type InMemoryVaultFactory struct{}

var _ vault.VaultFactory = InMemoryVaultFactory{}

// NewVault creates a new in-memory Vault; cfg is ignored.
func (f InMemoryVaultFactory) NewVault(cfg interface{}) vault.Vault {
	return NewInMemoryVault()
}
