// Package sdk defines the narrow interfaces hubscan needs from its host
// environment: a read-only chain client and the alternate hyperchain
// enumeration strategy used on rollup networks.
package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/elastic-chain/hubscan/types"
)

// ChainClient executes typed read-only calls and historical log queries
// against one network endpoint. *ethclient.Client satisfies it.
type ChainClient interface {
	bind.ContractCaller

	// BlockNumber returns the current chain head.
	BlockNumber(ctx context.Context) (uint64, error)

	// FilterLogs returns the historical logs matching the query.
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]ethtypes.Log, error)
}

// Hyperchain is one entry reported by the hyperchain enumeration strategy.
type Hyperchain struct {
	ChainID types.ChainID
	Address common.Address
}

// HyperchainEnumerator is the external chain-discovery strategy used when the
// queried node is itself a rollup rather than the root chain. Discovery
// treats its results as interchangeable with the root-chain log scan.
type HyperchainEnumerator interface {
	EnumerateHyperchains(ctx context.Context) ([]Hyperchain, error)
}
