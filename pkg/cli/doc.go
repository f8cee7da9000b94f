// Copyright (c) 2026 The hbase-preflight Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the hbase-preflight
// tool.
//
// # Overview
//
// hbase-preflight runs read-only compatibility validations against a live
// cluster before a major version upgrade. It talks to the cluster's REST
// gateway, never mutates cluster state, and reports which column families
// would break under the target version.
//
// # Usage
//
//	hbase-preflight --validateDBE
//	hbase-preflight --all --addr http://rest.cluster:8080
//	hbase-preflight --all --format yaml --output report.yaml
//
// Validation selection:
//
//	--all           run every registered pre-upgrade validation
//	--validateDBE   run only the Data Block Encoding validation
//
// Invoking the tool with neither selection flag is a usage error: silently
// reporting success without validating anything would defeat the point of a
// preflight check.
//
// # Global Flags
//
//	--addr           REST gateway address (env: HBASE_REST_ADDR)
//	--timeout        per-request timeout for cluster calls
//	--output, -o     report output file path (default: stdout)
//	--format, -t     report output format: table, yaml, json (default: table)
//	--debug          enable debug logging
//	--log-json       output logs in JSON format
//	--version, -v    show version information
//
// # Environment Variables
//
//	HBASE_REST_ADDR  REST gateway address (overridden by --addr)
//	LOG_LEVEL        logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  every requested validation passed
//	1  a validation failed, no validation was selected, or the cluster
//	   could not be reached
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/admin - read-only REST gateway administrative client
//   - pkg/validator - check registry and execution
//   - pkg/encoding - the supported data block encoding enumeration
//   - pkg/serializer - report output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hbase-tools/preflight/pkg/cli.version=1.0.0'"
package cli
