package main

import (
	"context"
	"errors"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/elastic-chain/hubscan/sdk"
)

// loadRPCURL resolves the RPC endpoint from the flag, falling back to the
// RPC_URL variable in a .env file.
func loadRPCURL(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	// A missing .env file is fine; the variable may come from the shell.
	_ = godotenv.Load(".env")

	url := os.Getenv("RPC_URL")
	if url == "" {
		return "", errors.New("no RPC endpoint: pass --rpc or set RPC_URL in .env")
	}

	return url, nil
}

// newRunContext returns a context carrying the CLI logger.
func newRunContext() context.Context {
	logger := zap.Must(zap.NewDevelopment()).Sugar()

	return context.WithValue(context.Background(), sdk.ContextLoggerValue, logger)
}

func dialClient(ctx context.Context, flagValue string) (*ethclient.Client, error) {
	url, err := loadRPCURL(flagValue)
	if err != nil {
		return nil, err
	}

	return ethclient.DialContext(ctx, url)
}
