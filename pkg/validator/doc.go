/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package validator runs pre-upgrade compatibility checks against a live
// cluster's table schemas.
//
// # Overview
//
// Checks are registered in a fixed registry (see Checks) and selected by
// name; running everything iterates the registry so new checks are picked up
// automatically. Each check inspects the read-only schema snapshot fetched
// through a SchemaLister and reports its findings. Nothing here mutates
// cluster state.
//
// The only check registered today is the data block encoding check
// (CheckDataBlockEncoding): it resolves every column family's
// DATA_BLOCK_ENCODING attribute against the closed set of encodings the
// upgrade target supports and reports every family whose value does not
// parse.
//
// # Usage
//
//	v := validator.New(validator.WithVersion("1.2.0"))
//	report, err := v.RunAll(ctx, client)
//	if err != nil {
//	    return err
//	}
//	if !report.Passed() {
//	    // at least one check found incompatibilities
//	}
//
// # Error Handling
//
// An incompatible encoding is an expected condition: it is logged, counted,
// and recorded as a Finding while iteration continues. Administrative
// failures (cluster unreachable, schema listing failed) abort the run and
// propagate to the caller.
package validator
