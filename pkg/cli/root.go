/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/hbase-tools/preflight/pkg/admin"
	"github.com/hbase-tools/preflight/pkg/logging"
	"github.com/hbase-tools/preflight/pkg/serializer"
	"github.com/hbase-tools/preflight/pkg/validator"
)

// version is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hbase-tools/preflight/pkg/cli.version=1.0.0'"
var version = "dev"

// ErrValidationFailed is returned when at least one requested validation
// found incompatibilities. The CLI entry point maps it to a nonzero exit.
var ErrValidationFailed = errors.New("pre-upgrade validation failed")

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  "hbase-preflight",
		Usage:                 "Validate that a cluster can be upgraded across a major version boundary",
		Version:               version,
		EnableShellCompletion: true,
		Description: `Runs read-only pre-upgrade validations against a live HBase cluster through
its REST gateway and reports anything the target version no longer supports.

Available validations:

  --all           Run all pre-upgrade validations
  --validateDBE   Check Data Block Encoding for column families

# Examples

Validate data block encodings against a local gateway:
  hbase-preflight --validateDBE

Run everything against a remote gateway, report as YAML:
  hbase-preflight --all --addr http://rest.cluster:8080 --format yaml

Write the report to a file for CI archiving:
  hbase-preflight --all --format json --output report.json

The exit code is 0 when every requested validation passes and 1 otherwise.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Run all pre-upgrade validations",
			},
			&cli.BoolFlag{
				Name:  "validateDBE",
				Usage: "Validate that column family Data Block Encodings are compatible with the target version",
			},
			&cli.StringFlag{
				Name:    "addr",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars("HBASE_REST_ADDR"),
				Usage:   "Address of the cluster REST gateway",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: admin.DefaultTimeout,
				Usage: "Per-request timeout for cluster calls",
			},
			outputFlag,
			formatFlag,
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Action: runValidations,
	}
}

func runValidations(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	runAll := cmd.Bool("all")
	var names []string
	if cmd.Bool("validateDBE") {
		names = append(names, validator.CheckDataBlockEncoding)
	}
	if !runAll && len(names) == 0 {
		return fmt.Errorf("no validation selected: pass --all or --validateDBE")
	}

	client, err := admin.Connect(cmd.String("addr"),
		admin.WithTimeout(cmd.Duration("timeout")))
	if err != nil {
		return err
	}
	defer client.Close()

	v := validator.New(validator.WithVersion(version))

	var report *validator.Report
	if runAll {
		report, err = v.RunAll(ctx, client)
	} else {
		report, err = v.Run(ctx, client, names)
	}
	if err != nil {
		slog.Error("validation run failed", "error", err)
		return err
	}

	// Best effort: the report is still useful without the cluster version.
	if cv, err := client.ClusterVersion(ctx); err == nil {
		report.Metadata.ClusterVersion = cv
	} else {
		slog.Debug("cluster version unavailable", "error", err)
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(report); err != nil {
		return err
	}

	if !report.Passed() {
		return ErrValidationFailed
	}
	return nil
}
