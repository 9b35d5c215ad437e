package txkernel

import (
	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/metrics"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

const subsystem = "txkernel"

var (
	invocations = metrics.NewCounter(
		"invocations_total",
		subsystem,
		"number of kernel procedure invocations",
		[]string{"procedure", "result"},
	)
	vaultMutations = metrics.NewCounter(
		"vault_mutations_total",
		subsystem,
		"number of account vault mutations",
		[]string{"op"},
	)
	foreignEnters = metrics.NewCounter(
		"foreign_enters_total",
		subsystem,
		"number of foreign context entries",
		[]string{},
	)
)

// vaultMeter counts vault mutations after they succeed.
type vaultMeter struct {
	core.NopObserver
}

func (vaultMeter) AfterVaultMutation(_ types.AccountID, op core.VaultOp, _ types.Asset) {
	vaultMutations.WithLabelValues(op.String()).Inc()
}
