package shamir

import (
	"context"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/sss-lib/core/share"
	comm_cfg "github.com/mr-shifu/sss-lib/pkg/recovery/common/config"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RecoverAll reconstructs every document with at most workers running at
// once. Results keep the order of docs. The first failure cancels the other
// documents between shares and is returned annotated with its position.
func (r *Recovery) RecoverAll(
	ctx context.Context,
	docs []share.Document,
	mode comm_cfg.Mode,
	modulus *saferith.Modulus,
	workers int,
) ([]*big.Int, error) {
	if workers < 1 {
		workers = 1
	}

	secrets := make([]*big.Int, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range docs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			secret, err := r.RecoverDocumentContext(ctx, docs[i], mode, modulus)
			if err != nil {
				return errors.WithMessagef(err, "document %d", i)
			}
			secrets[i] = secret.Value()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return secrets, nil
}
