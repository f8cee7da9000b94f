/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/google/uuid"
)

const (
	// APIVersion is the API version stamped on validation reports.
	APIVersion = "hbase.tools/v1alpha1"

	// Kind is the kind stamped on validation reports.
	Kind = "PreUpgradeReport"
)

// CheckStatus is the outcome of a single pre-upgrade check.
type CheckStatus string

const (
	// CheckStatusPassed means the check found no incompatibilities.
	CheckStatusPassed CheckStatus = "passed"

	// CheckStatusFailed means the check found at least one incompatibility.
	CheckStatusFailed CheckStatus = "failed"
)

// ReportStatus is the overall outcome of a validation run.
type ReportStatus string

const (
	// ReportStatusPass means every requested check passed.
	ReportStatusPass ReportStatus = "pass"

	// ReportStatusFail means at least one requested check failed.
	ReportStatusFail ReportStatus = "fail"
)

// Finding identifies one column family whose encoding the upgrade target
// does not support.
type Finding struct {
	Table      string `json:"table" yaml:"table"`
	Family     string `json:"family" yaml:"family"`
	Value      string `json:"value" yaml:"value"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// CheckResult is the outcome of one check: its status, the incompatibility
// count, and per-family findings.
type CheckResult struct {
	Name              string      `json:"name" yaml:"name"`
	Status            CheckStatus `json:"status" yaml:"status"`
	Incompatibilities int         `json:"incompatibilities" yaml:"incompatibilities"`
	Findings          []Finding   `json:"findings,omitempty" yaml:"findings,omitempty"`
	Message           string      `json:"message,omitempty" yaml:"message,omitempty"`
}

// Summary aggregates check outcomes for a run.
type Summary struct {
	Total    int           `json:"total" yaml:"total"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Status   ReportStatus  `json:"status" yaml:"status"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Metadata describes one validation run.
type Metadata struct {
	RunID          string    `json:"runId" yaml:"runId"`
	GeneratedAt    time.Time `json:"generatedAt" yaml:"generatedAt"`
	ToolVersion    string    `json:"toolVersion,omitempty" yaml:"toolVersion,omitempty"`
	ClusterVersion string    `json:"clusterVersion,omitempty" yaml:"clusterVersion,omitempty"`
}

// Report is the full, serializable result of a validation run.
type Report struct {
	APIVersion string        `json:"apiVersion" yaml:"apiVersion"`
	Kind       string        `json:"kind" yaml:"kind"`
	Metadata   Metadata      `json:"metadata" yaml:"metadata"`
	Checks     []CheckResult `json:"checks" yaml:"checks"`
	Summary    Summary       `json:"summary" yaml:"summary"`
}

// NewReport creates an empty report stamped with a fresh run ID.
func NewReport() *Report {
	return &Report{
		APIVersion: APIVersion,
		Kind:       Kind,
		Metadata: Metadata{
			RunID:       uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		},
	}
}

// Passed reports whether every check in the run passed.
func (r *Report) Passed() bool {
	return r.Summary.Status == ReportStatusPass
}
