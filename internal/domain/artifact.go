package domain

import (
	"fmt"
	"path/filepath"
)

// ContractClassSuffix is the file suffix of a compiled Sierra contract class
const ContractClassSuffix = ".contract_class.json"

// DefaultBuildProfile is the Scarb profile used when none is configured
const DefaultBuildProfile = "dev"

// BuildRoot returns the directory Scarb writes artifacts to for a build profile
func BuildRoot(projectPath, buildProfile string) string {
	if buildProfile == "" {
		buildProfile = DefaultBuildProfile
	}
	return filepath.Join(projectPath, "target", buildProfile)
}

// ResolveArtifactPath computes the expected contract class path.
// It only builds the path; checking that the file exists is up to the caller.
func ResolveArtifactPath(buildRoot, packageName, contractName string) string {
	return filepath.Join(buildRoot, fmt.Sprintf("%s_%s%s", packageName, contractName, ContractClassSuffix))
}
