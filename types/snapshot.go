package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProtocolVersion is a semver protocol version reported by a transition
// contract.
type ProtocolVersion struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v ProtocolVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// StateTransitionSnapshot is the progress and version state of one transition
// contract. The batch counters are expected to satisfy
// executed <= verified <= committed, but the snapshot reports whatever the
// chain returned, including transient inconsistency during re-orgs; nothing
// is validated here.
type StateTransitionSnapshot struct {
	Verifier            common.Address
	Admin               common.Address
	BatchesCommitted    *big.Int
	BatchesVerified     *big.Int
	BatchesExecuted     *big.Int
	ProtocolVersion     ProtocolVersion
	BootloaderHash      common.Hash
	DefaultAccountHash  common.Hash
	SystemUpgradeTxHash common.Hash
	ChainID             *big.Int
	SettlementLayer     common.Address
}
