package types

// NetworkRole describes the role of the network a discovery run queries.
// Chain discovery picks its strategy from this value; it is always passed
// explicitly, never inferred from ambient state.
type NetworkRole string

const (
	// RoleRootChain marks the settlement (L1) network. Chains are discovered
	// by scanning the hub's historical NewChain events.
	RoleRootChain NetworkRole = "RootChain"
	// RoleRollup marks a rollup (L2) network. Chains are discovered through
	// the external hyperchain enumeration collaborator.
	RoleRollup NetworkRole = "Rollup"
)

// StringToNetworkRole converts a string to a NetworkRole.
var StringToNetworkRole = map[string]NetworkRole{
	"RootChain": RoleRootChain,
	"Rollup":    RoleRollup,
}
