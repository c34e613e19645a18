package shamir

import (
	"context"
	"encoding/hex"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/google/uuid"
	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/hash"
	"github.com/mr-shifu/sss-lib/core/math/polynomial"
	"github.com/mr-shifu/sss-lib/core/share"
	"github.com/mr-shifu/sss-lib/pkg/common/vault"
	comm_cfg "github.com/mr-shifu/sss-lib/pkg/recovery/common/config"
	comm_result "github.com/mr-shifu/sss-lib/pkg/recovery/common/result"
	comm_share "github.com/mr-shifu/sss-lib/pkg/recovery/common/share"
	comm_state "github.com/mr-shifu/sss-lib/pkg/recovery/common/state"
	rec_cfg "github.com/mr-shifu/sss-lib/pkg/recovery/config"
	rec_result "github.com/mr-shifu/sss-lib/pkg/recovery/result"
	rec_share "github.com/mr-shifu/sss-lib/pkg/recovery/share"
	rec_state "github.com/mr-shifu/sss-lib/pkg/recovery/state"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrSessionClosed  = errors.New("shamir: session already finalized")
	ErrSessionAborted = errors.New("shamir: session aborted")
)

// Recovery runs reconstruction sessions: shares are submitted one at a time
// and the secret is computed once on Finalize.
type Recovery struct {
	cfgmgr    comm_cfg.RecoveryConfigManager
	statemgr  comm_state.StateManager
	sharemgr  comm_share.ShareManager
	secretmgr comm_result.SecretManager

	logger *zap.Logger
}

func NewRecovery(
	vf vault.VaultFactory,
	cfgstore comm_cfg.ConfigStore,
	statestore comm_state.StateStore,
	secretstore comm_result.SecretStore,
	logger *zap.Logger,
) *Recovery {
	if logger == nil {
		logger = zap.NewNop()
	}

	share_vault := vf.NewVault(nil)
	sharestore := rec_share.NewVaultShareStore(share_vault)

	return &Recovery{
		cfgmgr:    rec_cfg.NewRecoveryConfigManager(cfgstore),
		statemgr:  rec_state.NewStateManager(statestore),
		sharemgr:  rec_share.NewShareManager(sharestore),
		secretmgr: rec_result.NewSecretManager(secretstore),
		logger:    logger,
	}
}

// NewInMemoryRecovery returns a Recovery backed entirely by memory.
func NewInMemoryRecovery(vf vault.VaultFactory, logger *zap.Logger) *Recovery {
	return NewRecovery(
		vf,
		rec_cfg.NewInMemoryConfigStore(),
		rec_state.NewInMemoryStateStore(),
		rec_result.NewInMemorySecretStore(),
		logger,
	)
}

// Start opens a session for cfg. The threshold is checked here, the number
// of shares only on Finalize.
func (r *Recovery) Start(cfg comm_cfg.RecoveryConfig) error {
	t := cfg.Threshold()
	if err := t.Validate(t.K); err != nil {
		return err
	}
	if err := r.cfgmgr.ImportConfig(cfg); err != nil {
		return err
	}
	if err := r.statemgr.NewState(cfg.ID()); err != nil {
		return err
	}

	r.logger.Debug("session started",
		zap.String("session", cfg.ID()),
		zap.Int("n", t.N),
		zap.Int("k", t.K),
		zap.String("mode", string(cfg.Mode())))
	return nil
}

// Submit adds s to session ID. Malformed and repeated shares are rejected
// and leave the session open.
func (r *Recovery) Submit(ID string, s share.EncodedShare) error {
	state, err := r.statemgr.Get(ID)
	if err != nil {
		return err
	}
	if err := checkOpen(state); err != nil {
		return err
	}

	n, err := r.sharemgr.Import(ID, s)
	if err != nil {
		return errors.WithMessagef(err, "session %s: share %q", ID, s.Key)
	}
	if err := r.statemgr.SetShares(ID, n); err != nil {
		return err
	}

	r.logger.Debug("share submitted",
		zap.String("session", ID),
		zap.String("key", s.Key),
		zap.Int("base", s.Base),
		zap.Int("shares", n))
	return nil
}

// Finalize reconstructs the secret of session ID. A session that is short of
// shares stays open; any other failure aborts it. Finalizing a completed
// session returns the stored secret.
func (r *Recovery) Finalize(ID string) (comm_result.Secret, error) {
	cfg, err := r.cfgmgr.GetConfig(ID)
	if err != nil {
		return nil, err
	}
	state, err := r.statemgr.Get(ID)
	if err != nil {
		return nil, err
	}
	if state.Completed() {
		return r.secretmgr.Get(ID)
	}
	if state.Aborted() {
		return nil, ErrSessionAborted
	}

	shares, err := r.sharemgr.GetAll(ID)
	if err != nil && !errors.Is(err, rec_share.ErrNoShares) {
		return nil, err
	}

	doc := share.Document{Threshold: cfg.Threshold(), Shares: shares}
	points, err := share.Prepare(doc)
	if errs.KindOf(err) == errs.InsufficientPoints {
		return nil, err
	}
	if err != nil {
		return nil, r.abort(ID, err)
	}

	var modulus *big.Int
	if cfg.Mode() == comm_cfg.ModeField {
		modulus = cfg.Modulus().Big()
	}
	fp, err := hash.Fingerprint(string(cfg.Mode()), doc.Threshold.K, modulus, points)
	if err != nil {
		return nil, r.abort(ID, err)
	}

	var value *big.Int
	if cached, err := r.secretmgr.Lookup(fp); err == nil {
		r.logger.Debug("fingerprint matched", zap.String("session", ID), zap.String("source", cached.ID()))
		value = cached.Value()
	} else {
		value, err = interpolate(cfg, points)
		if err != nil {
			return nil, r.abort(ID, err)
		}
	}

	secret, err := r.secretmgr.NewSecret(ID, value, fp)
	if err != nil {
		return nil, err
	}
	if err := r.statemgr.SetCompleted(ID); err != nil {
		return nil, err
	}
	if err := r.sharemgr.Delete(ID); err != nil {
		r.logger.Warn("failed to discard shares", zap.String("session", ID), zap.Error(err))
	}

	r.logger.Info("secret recovered",
		zap.String("session", ID),
		zap.Int("k", doc.Threshold.K),
		zap.String("digest", hex.EncodeToString(secret.Digest())))
	return secret, nil
}

// RecoverDocument runs a whole session for doc.
func (r *Recovery) RecoverDocument(doc share.Document, mode comm_cfg.Mode, modulus *saferith.Modulus) (comm_result.Secret, error) {
	return r.RecoverDocumentContext(context.Background(), doc, mode, modulus)
}

// RecoverDocumentContext is RecoverDocument with cancellation. ctx is checked
// before every share and before the interpolation; a cancelled session is
// aborted. The interpolation itself runs to completion once started.
func (r *Recovery) RecoverDocumentContext(
	ctx context.Context,
	doc share.Document,
	mode comm_cfg.Mode,
	modulus *saferith.Modulus,
) (comm_result.Secret, error) {
	if err := doc.Threshold.Validate(len(doc.Shares)); err != nil {
		return nil, err
	}

	ID := uuid.New().String()
	cfg := rec_cfg.NewRecoveryConfig(ID, doc.Threshold, mode, modulus)
	if err := r.Start(cfg); err != nil {
		return nil, err
	}
	for _, s := range doc.Shares {
		if err := ctx.Err(); err != nil {
			return nil, r.abort(ID, err)
		}
		if err := r.Submit(ID, s); err != nil {
			return nil, r.abort(ID, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, r.abort(ID, err)
	}
	secret, err := r.Finalize(ID)
	if errs.KindOf(err) == errs.InsufficientPoints {
		return nil, r.abort(ID, err)
	}
	return secret, err
}

func (r *Recovery) abort(ID string, err error) error {
	fields := []zap.Field{
		zap.String("session", ID),
		zap.Stringer("kind", errs.KindOf(err)),
		zap.Error(err),
	}
	var e *errs.Error
	if errors.As(err, &e) {
		if e.Key != "" {
			fields = append(fields, zap.String("key", e.Key))
		}
		if e.Index >= 0 {
			fields = append(fields, zap.Int("index", e.Index))
		}
	}
	r.logger.Warn("recovery aborted", fields...)

	if aerr := r.statemgr.SetAborted(ID); aerr != nil {
		return aerr
	}
	if derr := r.sharemgr.Delete(ID); derr != nil {
		r.logger.Warn("failed to discard shares", zap.String("session", ID), zap.Error(derr))
	}
	return err
}

func interpolate(cfg comm_cfg.RecoveryConfig, points []polynomial.Point) (*big.Int, error) {
	k := cfg.Threshold().K
	switch cfg.Mode() {
	case comm_cfg.ModeField:
		secret, err := polynomial.InterpolateAtZeroMod(points, k, cfg.Modulus())
		if err != nil {
			return nil, err
		}
		return secret.Big(), nil
	default:
		return polynomial.InterpolateAtZero(points, k)
	}
}

func checkOpen(state comm_state.State) error {
	if state.Completed() {
		return ErrSessionClosed
	}
	if state.Aborted() {
		return ErrSessionAborted
	}
	return nil
}
