package types

import "github.com/ethereum/go-ethereum/common"

// BridgeTopology is the full set of per-chain contract addresses resolved
// from a bridge hub at a single point in time. The struct is immutable once
// built; rebuilding it re-queries the chain and may observe different values.
type BridgeTopology struct {
	TransitionManager  common.Address
	TransitionContract common.Address
	SharedBridge       common.Address
	BaseToken          common.Address
	ValidatorTimelock  common.Address
	AssetID            common.Hash
}
