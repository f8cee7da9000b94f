/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package admin is a thin, read-only administrative client for an HBase REST
// gateway.
//
// # Overview
//
// The client exposes exactly the operations the pre-upgrade checks need:
// connect, list table schemas, read the cluster version, and close. Table
// schemas are returned as immutable snapshots; nothing in this package writes
// to the cluster.
//
// # Usage
//
//	client, err := admin.Connect("http://rest-gateway:8080",
//	    admin.WithTimeout(10*time.Second))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	schemas, err := client.ListTableSchemas(ctx)
//
// # Error Handling
//
// Connectivity and decode failures are fatal for the calling run: they are
// wrapped and returned immediately, never retried. Cancellation is honored
// through the request context.
package admin
