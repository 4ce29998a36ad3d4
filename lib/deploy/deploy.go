// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/deckhand-deploy/deckhand/lib/clock"
	"github.com/deckhand-deploy/deckhand/lib/manifest"
	"github.com/deckhand-deploy/deckhand/lib/naming"
	"github.com/deckhand-deploy/deckhand/lib/record"
	"github.com/deckhand-deploy/deckhand/lib/relocate"
)

// Options configures a Deployer.
type Options struct {
	// Algorithm is the content digest algorithm. Empty means sha1.
	Algorithm relocate.Algorithm

	// Workers bounds concurrent relocations. Zero means
	// relocate.DefaultWorkers.
	Workers int

	// OutputDir is where relocated artifacts are written. Empty
	// keeps each artifact in its source directory.
	OutputDir string

	// RecordPath is where the deployment record is written. Empty
	// means record.DefaultFilename inside OutputDir (or the current
	// directory when OutputDir is also empty).
	RecordPath string
}

// Outcome is the explicit result of a run. A skipped run is not an
// error: the hashing feature stands down and the surrounding pipeline
// proceeds with default naming.
type Outcome struct {
	// Applied reports whether hash-based relocation ran to
	// completion and the directory name was assigned.
	Applied bool

	// SkipReason is the diagnostic for a skipped run, empty when
	// Applied.
	SkipReason string

	// Directory is the assigned deployment directory name, empty
	// when skipped.
	Directory string

	// Records lists the relocated artifacts, in batch order.
	Records []relocate.Record
}

// Deployer runs the relocation feature against a manifest.
type Deployer struct {
	logger  *slog.Logger
	clock   clock.Clock
	options Options
}

// New creates a Deployer. The clock stamps the deployment record and
// any descriptor naming override; production passes clock.Real().
func New(logger *slog.Logger, clk clock.Clock, options Options) *Deployer {
	return &Deployer{logger: logger, clock: clk, options: options}
}

// Run executes precondition → relocation → naming → record for one
// manifest. On success the manifest's DeploymentDirectory is set to
// the hash-addressed name. The four recoverable conditions
// (already-assigned name, failed precondition, incompatible naming
// host, relocation I/O failure) return a skipped Outcome with a nil
// error; anything else is a real error.
//
// A relocation failure does not undo sibling relocations that already
// completed — relocated names are pure functions of content, so
// re-running the whole batch is the recovery path.
func (d *Deployer) Run(ctx context.Context, m *manifest.Manifest) (Outcome, error) {
	if m.DeploymentDirectory != "" {
		return d.skip(&naming.AlreadyAssignedError{Directory: m.DeploymentDirectory}), nil
	}

	eligible, err := relocate.Validate(m.AllTargets())
	if err != nil {
		return d.maybeSkip(err)
	}

	relocator := relocate.Relocator{
		OutputDir: d.options.OutputDir,
		Algorithm: d.options.Algorithm,
	}
	records, err := relocate.All(ctx, &relocator, eligible, d.options.Workers)
	if err != nil {
		return d.maybeSkip(err)
	}
	for _, r := range records {
		d.logger.Info("relocated artifact",
			"target", r.Target,
			"digest", r.Digest,
			"path", r.Path,
		)
	}

	// The directory name is assigned only after every relocation has
	// completed — never before, never partially.
	directory := naming.DirectoryName(m.Prefix, m.Service, m.Stage)
	m.DeploymentDirectory = directory

	deployment := &record.Deployment{
		Service:   m.Service,
		Stage:     m.Stage,
		Directory: directory,
		CreatedAt: d.clock.Now().UTC(),
		Artifacts: records,
	}
	if err := record.Write(d.recordPath(), deployment); err != nil {
		return Outcome{}, err
	}

	d.logger.Info("deployment directory assigned", "directory", directory, "artifacts", len(records))
	return Outcome{Applied: true, Directory: directory, Records: records}, nil
}

// maybeSkip converts the recoverable error taxonomy into a skipped
// Outcome and passes everything else through as a real error.
func (d *Deployer) maybeSkip(err error) (Outcome, error) {
	var preconditionErr *relocate.PreconditionError
	var relocationErr *relocate.RelocationError
	var incompatibleErr *naming.IncompatibleHostError

	switch {
	case errors.As(err, &preconditionErr),
		errors.As(err, &relocationErr),
		errors.As(err, &incompatibleErr):
		return d.skip(err), nil
	default:
		return Outcome{}, err
	}
}

// skip logs the reason and returns a skipped Outcome.
func (d *Deployer) skip(reason error) Outcome {
	d.logger.Warn("hash-based relocation skipped", "reason", reason.Error())
	return Outcome{SkipReason: reason.Error()}
}

// recordPath resolves where the deployment record is written.
func (d *Deployer) recordPath() string {
	if d.options.RecordPath != "" {
		return d.options.RecordPath
	}
	return filepath.Join(d.options.OutputDir, record.DefaultFilename)
}
