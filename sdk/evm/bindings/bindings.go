// Package bindings provides hand-rolled read-only Go bindings for the bridge
// hub contract family. Only the call and event surface hubscan consumes is
// declared here; the deployed contracts expose far more.
package bindings

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}

	return parsed
}
