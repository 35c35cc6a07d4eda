package hubscan

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/elastic-chain/hubscan/types"
)

// NoContractCodeError is returned when an inspected address holds no contract
// code on the queried network.
type NoContractCodeError struct {
	Address common.Address
}

// NewNoContractCodeError creates a new NoContractCodeError.
func NewNoContractCodeError(address common.Address) *NoContractCodeError {
	return &NoContractCodeError{Address: address}
}

func (e *NoContractCodeError) Error() string {
	return fmt.Sprintf("no contract code at %s: wrong address or wrong network", e.Address)
}

// TopicNotAddressError is returned when a 256-bit log topic carries a value
// that does not fit a 20-byte address.
type TopicNotAddressError struct {
	Topic common.Hash
}

// NewTopicNotAddressError creates a new TopicNotAddressError.
func NewTopicNotAddressError(topic common.Hash) *TopicNotAddressError {
	return &TopicNotAddressError{Topic: topic}
}

func (e *TopicNotAddressError) Error() string {
	return fmt.Sprintf("log topic %s does not fit a 20-byte address", e.Topic)
}

// ChainsNotDiscoveredError is returned when a detailed report is requested
// before chain discovery ran for the hub.
type ChainsNotDiscoveredError struct {
	Hub common.Address
}

// NewChainsNotDiscoveredError creates a new ChainsNotDiscoveredError.
func NewChainsNotDiscoveredError(hub common.Address) *ChainsNotDiscoveredError {
	return &ChainsNotDiscoveredError{Hub: hub}
}

func (e *ChainsNotDiscoveredError) Error() string {
	return fmt.Sprintf("chains have not been discovered for hub %s", e.Hub)
}

// UnknownNetworkRoleError is returned when discovery is asked to run with a
// network role outside the known set.
type UnknownNetworkRoleError struct {
	Role types.NetworkRole
}

// NewUnknownNetworkRoleError creates a new UnknownNetworkRoleError.
func NewUnknownNetworkRoleError(role types.NetworkRole) *UnknownNetworkRoleError {
	return &UnknownNetworkRoleError{Role: role}
}

func (e *UnknownNetworkRoleError) Error() string {
	return fmt.Sprintf("unknown network role: %q", string(e.Role))
}
