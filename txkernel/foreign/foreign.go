// Package foreign implements the foreign context manager: loading read-only
// snapshots of other accounts into the transaction and retargeting the
// context at them.
//
// Witness data arrives from an untrusted advice provider. A snapshot becomes
// usable only after its recomputed commitment matches the commitment the
// ledger has on record; validated snapshots are cached so that re-entering
// the same account costs nothing.
package foreign

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

// Manager loads and validates foreign account snapshots for one transaction.
// Not safe for concurrent use, like the context it drives.
type Manager struct {
	logger   *zap.Logger
	ctx      *core.Context
	provider core.AdviceProvider
	ledger   core.CommitmentLoader
	cache    *lru.Cache[types.AccountID, *core.Account]
}

// Opt is for changing manager optional parameters.
type Opt func(*Manager)

// WithLogger sets the logger for the manager.
func WithLogger(logger *zap.Logger) Opt {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a manager bound to a transaction context. Cache capacity comes
// from the context's params.
func New(ctx *core.Context, provider core.AdviceProvider, ledger core.CommitmentLoader, opts ...Opt) (*Manager, error) {
	cache, err := lru.New[types.AccountID, *core.Account](ctx.Params.ForeignCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create witness cache: %w", err)
	}
	m := &Manager{
		logger:   zap.NewNop(),
		ctx:      ctx,
		provider: provider,
		ledger:   ledger,
		cache:    cache,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Enter retargets the context at the account with the given id. The snapshot
// is fetched from the advice provider and validated against the ledger
// commitment unless a validated copy is already cached.
func (m *Manager) Enter(id types.AccountID) error {
	// No nesting: reject before touching the cache or the provider so a bad
	// call does not fetch, validate and cache a snapshot it can never enter.
	if m.ctx.InForeign() {
		return fmt.Errorf("%w: %s", core.ErrAlreadyForeign, m.ctx.ForeignID().Hex())
	}
	if account, ok := m.cache.Get(id); ok {
		m.logger.Debug("foreign account cache hit", zap.Stringer("account", id))
		return m.ctx.EnterForeign(account)
	}
	account, err := m.load(id)
	if err != nil {
		return err
	}
	m.cache.Add(id, account)
	return m.ctx.EnterForeign(account)
}

// Exit returns the context to the native account.
func (m *Manager) Exit() error {
	return m.ctx.ExitForeign()
}

func (m *Manager) load(id types.AccountID) (*core.Account, error) {
	expected, err := m.ledger.AccountCommitment(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", core.ErrUnknownAccount, id.Hex(), err)
	}
	raw, err := m.provider.AccountWitness(id)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch witness for %s: %s", core.ErrInternal, id.Hex(), err)
	}
	record, err := decodeWitness(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrMalformedAdvice, err)
	}
	if record.ID != id {
		return nil, fmt.Errorf("%w: record is for %s, requested %s",
			core.ErrMalformedAdvice, record.ID.Hex(), id.Hex())
	}
	account, err := record.restore(m.ctx.Maps)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrMalformedAdvice, err)
	}
	if commitment := account.Commitment(); commitment != expected {
		return nil, fmt.Errorf("%w: %s: computed %s, on record %s",
			core.ErrCommitmentMismatch, id.Hex(), commitment, expected)
	}
	m.logger.Debug("foreign account loaded",
		zap.Stringer("account", id),
		zap.Int("slots", len(record.Slots)),
		zap.Int("procedures", len(record.Procedures)),
	)
	return account, nil
}
