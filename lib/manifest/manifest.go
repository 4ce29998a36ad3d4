// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

// Manifest describes one deployment: the service identity, where its
// artifacts are uploaded, and the build targets that make up the
// batch.
//
// Struct tags follow the dual-format convention: json tags drive both
// JSONC and CBOR field naming; yaml tags mirror them for YAML-authored
// manifests.
type Manifest struct {
	// Service is the service name, the second component of the
	// deployment directory name.
	Service string `json:"service" yaml:"service"`

	// Stage is the deployment stage (e.g. "dev", "prod"), the third
	// component of the deployment directory name.
	Stage string `json:"stage" yaml:"stage"`

	// Prefix is the upload key prefix, the first component of the
	// deployment directory name.
	Prefix string `json:"prefix" yaml:"prefix"`

	// DeploymentDirectory is the already-assigned directory name, if
	// an earlier pipeline stage set one. When non-empty, hash-based
	// relocation is skipped entirely for this run — the name must
	// never be overwritten.
	DeploymentDirectory string `json:"deployment_directory,omitempty" yaml:"deployment_directory,omitempty"`

	// Descriptor is the path of the deployment descriptor document
	// uploaded alongside the artifacts. The descriptor is regenerated
	// on every run and is never content-hashed.
	Descriptor string `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`

	// Targets is the ordered batch of build targets. Order matters:
	// precondition validation reports the first ineligible target in
	// manifest order.
	Targets []Target `json:"targets" yaml:"targets"`
}

// Target is one declared build output in the batch.
type Target struct {
	// Name identifies the target in diagnostics and in the
	// deployment record.
	Name string `json:"name" yaml:"name"`

	// Artifact is the path of the pre-built artifact for this
	// target, empty if none has been materialized.
	Artifact string `json:"artifact,omitempty" yaml:"artifact,omitempty"`

	// Image is an externally supplied image reference. A target with
	// an image has nothing to package and is skipped by relocation.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`

	// PackagingDisabled excludes the target from packaging (and
	// therefore from relocation) without making the batch invalid.
	PackagingDisabled bool `json:"packaging_disabled,omitempty" yaml:"packaging_disabled,omitempty"`
}

// Registry is the target-lookup surface consumed by the deploy
// orchestrator. Manifest implements it; host pipelines with their own
// target bookkeeping can substitute an implementation.
type Registry interface {
	// AllTargets returns every target in batch order.
	AllTargets() []Target

	// Lookup returns the target with the given name.
	Lookup(name string) (Target, bool)
}

// AllTargets returns the manifest's targets in declaration order.
func (m *Manifest) AllTargets() []Target {
	return m.Targets
}

// Lookup returns the target with the given name.
func (m *Manifest) Lookup(name string) (Target, bool) {
	for _, target := range m.Targets {
		if target.Name == name {
			return target, true
		}
	}
	return Target{}, false
}
