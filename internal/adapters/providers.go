package adapters

import (
	"github.com/google/wire"
	internalconfig "github.com/trebuchet-org/stark-deploy/internal/adapters/config"
	"github.com/trebuchet-org/stark-deploy/internal/adapters/fs"
	"github.com/trebuchet-org/stark-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/stark-deploy/internal/adapters/manifest"
	"github.com/trebuchet-org/stark-deploy/internal/adapters/parameters"
	"github.com/trebuchet-org/stark-deploy/internal/adapters/toolchain"
	"github.com/trebuchet-org/stark-deploy/internal/domain/config"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
)

// ProvideActiveNetwork provides the name of the network resolved at startup
func ProvideActiveNetwork(cfg *config.RuntimeConfig) usecase.ActiveNetwork {
	if cfg.Network == nil {
		return ""
	}
	return usecase.ActiveNetwork(cfg.Network.Name)
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileSystemAdapter,
	wire.Bind(new(usecase.FileSystem), new(*fs.FileSystemAdapter)),

	fs.NewRegistryStoreAdapter,
	wire.Bind(new(usecase.DeploymentRepository), new(*fs.RegistryStoreAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),
)

// ToolchainSet provides the scarb and starkli integrations
var ToolchainSet = wire.NewSet(
	toolchain.NewExecRunner,
	wire.Bind(new(usecase.ToolRunner), new(*toolchain.ExecRunner)),

	manifest.NewScarbManifestReader,
	wire.Bind(new(usecase.ManifestReader), new(*manifest.ScarbManifestReader)),

	parameters.NewConstructorArgsNormalizer,
	wire.Bind(new(usecase.ConstructorArgsNormalizer), new(*parameters.ConstructorArgsNormalizer)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
	ProvideActiveNetwork,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ToolchainSet,
	InteractiveSet,
	ConfigSet,
)
