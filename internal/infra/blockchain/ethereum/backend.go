package ethereum

import (
	"context"
	"math/big"
	"net/http"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// Backend is the set of node operations the client relies on. It is the
// subset of *ethclient.Client used by the service plus the node version.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	FeeHistory(ctx context.Context, blockCount uint64, lastBlock *big.Int, rewardPercentiles []float64) (*geth.FeeHistory, error)
	EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
	ClientVersion(ctx context.Context) (string, error)
	Close()
}

// node is the Backend talking JSON-RPC to a real node.
type node struct {
	*ethclient.Client
	rpc *rpc.Client
}

// Ensure compile-time compliance with the Backend interface.
var _ Backend = (*node)(nil)

// Dial connects to the node JSON-RPC endpoint. HTTP endpoints use
// httpClient, so its timeout and retry policy apply to every node call.
func Dial(ctx context.Context, endpoint string, httpClient *http.Client) (*node, error) {
	conn, err := rpc.DialOptions(ctx, endpoint, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}

	return &node{
		Client: ethclient.NewClient(conn),
		rpc:    conn,
	}, nil
}

// ClientVersion returns the node software version (web3_clientVersion).
func (n *node) ClientVersion(ctx context.Context) (string, error) {
	var version string
	if err := n.rpc.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return "", err
	}

	return version, nil
}
