package releases

import (
	"fmt"
	"strings"
)

// ArtifactKind identifies a releasable binary.
type ArtifactKind int

const (
	Safe ArtifactKind = iota
	Safenode
	SafenodeManager
	SafenodeRpcClient
	NodeLaunchpad
	Faucet
	Testnet
	NatDetection
)

// Stream says where an artifact's releases are published.
type Stream int

const (
	// StreamWorkspace is a repository whose release history interleaves tags
	// for many binaries.
	StreamWorkspace Stream = iota
	// StreamStandalone is a repository that releases only one binary, so its
	// latest release is the artifact's latest version.
	StreamStandalone
	// StreamRegistry resolves versions from a package registry.
	StreamRegistry
)

func (s Stream) String() string {
	switch s {
	case StreamWorkspace:
		return "workspace"
	case StreamStandalone:
		return "standalone"
	case StreamRegistry:
		return "registry"
	default:
		return "unknown"
	}
}

type kindInfo struct {
	name    string // URL and binary name
	key     string // tag prefix or registry package
	stream  Stream
	repo    string // standalone repository name
	baseURL string
}

var kindTable = [...]kindInfo{
	Safe:              {name: "safe", key: "sn_cli", stream: StreamWorkspace, baseURL: "https://sn-cli.s3.eu-west-2.amazonaws.com"},
	Safenode:          {name: "safenode", key: "sn_node", stream: StreamWorkspace, baseURL: "https://sn-node.s3.eu-west-2.amazonaws.com"},
	SafenodeManager:   {name: "safenode-manager", key: "sn-node-manager", stream: StreamStandalone, repo: "sn-node-manager", baseURL: "https://sn-node-manager.s3.eu-west-2.amazonaws.com"},
	SafenodeRpcClient: {name: "safenode_rpc_client", key: "sn_node_rpc_client", stream: StreamWorkspace, baseURL: "https://sn-node-rpc-client.s3.eu-west-2.amazonaws.com"},
	NodeLaunchpad:     {name: "node-launchpad", key: "node-launchpad", stream: StreamRegistry, baseURL: "https://node-launchpad.s3.eu-west-2.amazonaws.com"},
	Faucet:            {name: "faucet", key: "sn_faucet", stream: StreamWorkspace, baseURL: "https://sn-faucet.s3.eu-west-2.amazonaws.com"},
	Testnet:           {name: "testnet", key: "sn_testnet", stream: StreamWorkspace, baseURL: "https://sn-testnet.s3.eu-west-2.amazonaws.com"},
	NatDetection:      {name: "nat-detection", key: "nat-detection", stream: StreamRegistry, baseURL: "https://nat-detection.s3.eu-west-2.amazonaws.com"},
}

func (k ArtifactKind) info() kindInfo {
	if k < 0 || int(k) >= len(kindTable) {
		return kindInfo{name: fmt.Sprintf("ArtifactKind(%d)", int(k))}
	}
	return kindTable[k]
}

// String returns the artifact's name as used in distribution URLs.
func (k ArtifactKind) String() string { return k.info().name }

// Name is the lower-cased name used in distribution URLs and archive names.
func (k ArtifactKind) Name() string { return strings.ToLower(k.info().name) }

// ResolverKey is the tag prefix (workspace stream) or package name (registry)
// the resolver looks for.
func (k ArtifactKind) ResolverKey() string { return k.info().key }

func (k ArtifactKind) Stream() Stream { return k.info().stream }

// Repo returns the standalone repository name, or "" for other streams.
func (k ArtifactKind) Repo() string { return k.info().repo }

// DefaultBaseURL is the production distribution host for the artifact.
func (k ArtifactKind) DefaultBaseURL() string { return k.info().baseURL }

// BinaryName is the file name the packaged binary is expected to have on p.
// Windows archives carry an .exe suffix by packaging convention only.
func (k ArtifactKind) BinaryName(p Platform) string {
	if p == WindowsX86_64 {
		return k.Name() + ".exe"
	}
	return k.Name()
}

// AllArtifactKinds lists every kind in declaration order.
func AllArtifactKinds() []ArtifactKind {
	kinds := make([]ArtifactKind, len(kindTable))
	for i := range kindTable {
		kinds[i] = ArtifactKind(i)
	}
	return kinds
}

// ParseArtifactKind looks a kind up by its name, case-insensitively.
func ParseArtifactKind(name string) (ArtifactKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, info := range kindTable {
		if info.name == n {
			return ArtifactKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown artifact %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k ArtifactKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ArtifactKind) UnmarshalText(b []byte) error {
	parsed, err := ParseArtifactKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
