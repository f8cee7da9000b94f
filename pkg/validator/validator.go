/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hbase-tools/preflight/pkg/admin"
)

// SchemaLister is the administrative surface the checks consume. The admin
// REST client satisfies it; tests substitute a fake.
type SchemaLister interface {
	ListTableSchemas(ctx context.Context) ([]admin.TableSchema, error)
}

// Check is one registered pre-upgrade validation.
type Check struct {
	// Name is the check's selector, matching its CLI flag.
	Name string

	// Description is a one-line summary for usage text.
	Description string

	run func(v *Validator, ctx context.Context, lister SchemaLister) (*CheckResult, error)
}

// CheckDataBlockEncoding selects the data block encoding check.
const CheckDataBlockEncoding = "validateDBE"

// Checks returns every registered pre-upgrade check, in execution order.
// New checks are added here and picked up automatically by "run everything"
// callers.
func Checks() []Check {
	return []Check{
		{
			Name:        CheckDataBlockEncoding,
			Description: "Check that column family Data Block Encodings are supported by the target version",
			run:         (*Validator).validateEncodings,
		},
	}
}

// Validator runs pre-upgrade checks against a cluster's table schemas.
type Validator struct {
	// Version is the tool version stamped on reports.
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run executes the named checks sequentially against the cluster behind
// lister and returns the aggregated report. Checks never short-circuit each
// other: a failed check is recorded and the run continues. An unknown check
// name, or an administrative error from the cluster, aborts the run.
func (v *Validator) Run(ctx context.Context, lister SchemaLister, names []string) (*Report, error) {
	start := time.Now()

	if lister == nil {
		return nil, fmt.Errorf("schema lister cannot be nil")
	}

	selected, err := selectChecks(names)
	if err != nil {
		return nil, err
	}

	report := NewReport()
	report.Metadata.ToolVersion = v.Version

	for _, chk := range selected {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		res, err := chk.run(v, ctx, lister)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", chk.Name, err)
		}
		report.Checks = append(report.Checks, *res)

		switch res.Status {
		case CheckStatusPassed:
			report.Summary.Passed++
		case CheckStatusFailed:
			report.Summary.Failed++
		}
	}

	report.Summary.Total = len(report.Checks)
	report.Summary.Duration = time.Since(start)
	if report.Summary.Failed > 0 {
		report.Summary.Status = ReportStatusFail
	} else {
		report.Summary.Status = ReportStatusPass
	}

	slog.Debug("validation run completed",
		"checks", report.Summary.Total,
		"passed", report.Summary.Passed,
		"failed", report.Summary.Failed,
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)

	return report, nil
}

// RunAll executes every registered check.
func (v *Validator) RunAll(ctx context.Context, lister SchemaLister) (*Report, error) {
	names := make([]string, 0, len(Checks()))
	for _, chk := range Checks() {
		names = append(names, chk.Name)
	}
	return v.Run(ctx, lister, names)
}

// selectChecks resolves check names against the registry, preserving
// registry order and dropping duplicates.
func selectChecks(names []string) ([]Check, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no checks selected")
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]Check, 0, len(wanted))
	for _, chk := range Checks() {
		if wanted[chk.Name] {
			selected = append(selected, chk)
			delete(wanted, chk.Name)
		}
	}

	for name := range wanted {
		return nil, fmt.Errorf("unknown check %q", name)
	}
	return selected, nil
}
