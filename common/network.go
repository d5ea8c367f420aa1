package common

import "github.com/gagliardetto/solana-go/rpc"

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkDevnet  Network = "devnet"
)

var supportedNetworks = map[Network]struct{}{
	NetworkMainnet: {},
	NetworkDevnet:  {},
}

var rpcEndpoints = map[Network]string{
	NetworkMainnet: rpc.MainNetBeta_RPC,
	NetworkDevnet:  rpc.DevNet_RPC,
}

func (n Network) IsSupported() bool {
	_, ok := supportedNetworks[n]
	return ok
}

// DefaultRPCEndpoint returns the public RPC endpoint for the network. A
// dedicated endpoint from configuration takes precedence over this default.
func (n Network) DefaultRPCEndpoint() string {
	return rpcEndpoints[n]
}

func (n Network) String() string {
	return string(n)
}
