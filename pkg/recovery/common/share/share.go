package share

import "github.com/mr-shifu/sss-lib/core/share"

type ShareStore interface {
	Import(ID string, s share.EncodedShare) error
	GetAll(ID string) ([]share.EncodedShare, error)
	Delete(ID string) error
}

type ShareManager interface {
	Import(ID string, s share.EncodedShare) (int, error)
	GetAll(ID string) ([]share.EncodedShare, error)
	Delete(ID string) error
}
