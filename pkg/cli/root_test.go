package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbase-tools/preflight/pkg/validator"
)

func newGateway(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCommand(t *testing.T, addr string, args ...string) (*validator.Report, error) {
	t.Helper()

	reportPath := filepath.Join(t.TempDir(), "report.json")
	full := append([]string{"hbase-preflight", "--addr", addr, "--format", "json", "--output", reportPath}, args...)

	runErr := New().Run(context.Background(), full)

	content, err := os.ReadFile(reportPath)
	if err != nil {
		return nil, runErr
	}
	var report validator.Report
	require.NoError(t, json.Unmarshal(content, &report))
	return &report, runErr
}

func TestRun_CompatibleCluster(t *testing.T) {
	srv := newGateway(t, map[string]string{
		"/":                `{"table":[{"name":"T1"}]}`,
		"/T1/schema":       `{"name":"T1","ColumnSchema":[{"name":"cf1","DATA_BLOCK_ENCODING":"FAST_DIFF"}]}`,
		"/version/cluster": `{"Version":"1.4.13"}`,
	})

	report, err := runCommand(t, srv.URL, "--validateDBE")
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, validator.ReportStatusPass, report.Summary.Status)
	assert.Equal(t, "1.4.13", report.Metadata.ClusterVersion)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, 0, report.Checks[0].Incompatibilities)
}

func TestRun_IncompatibleClusterExitsNonzero(t *testing.T) {
	srv := newGateway(t, map[string]string{
		"/":          `{"table":[{"name":"T1"}]}`,
		"/T1/schema": `{"name":"T1","ColumnSchema":[{"name":"cf1","DATA_BLOCK_ENCODING":"PREFIX_TREE"}]}`,
	})

	report, err := runCommand(t, srv.URL, "--validateDBE")
	assert.ErrorIs(t, err, ErrValidationFailed)

	// The report is still written before the failure is surfaced.
	require.NotNil(t, report)
	assert.Equal(t, validator.ReportStatusFail, report.Summary.Status)
	require.Len(t, report.Checks, 1)
	require.Len(t, report.Checks[0].Findings, 1)
	assert.Equal(t, "T1", report.Checks[0].Findings[0].Table)
	assert.Equal(t, "cf1", report.Checks[0].Findings[0].Family)
	assert.Equal(t, "PREFIX_TREE", report.Checks[0].Findings[0].Value)
}

func TestRun_AllRunsEveryRegisteredCheck(t *testing.T) {
	srv := newGateway(t, map[string]string{
		"/": `{"table":[]}`,
	})

	report, err := runCommand(t, srv.URL, "--all")
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Len(t, report.Checks, len(validator.Checks()))
}

func TestRun_NoValidationSelected(t *testing.T) {
	srv := newGateway(t, map[string]string{"/": `{"table":[]}`})

	_, err := runCommand(t, srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no validation selected")
}

func TestRun_UnknownFormat(t *testing.T) {
	err := New().Run(context.Background(),
		[]string{"hbase-preflight", "--validateDBE", "--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRun_UnreachableCluster(t *testing.T) {
	srv := newGateway(t, nil)
	addr := srv.URL
	srv.Close()

	_, err := runCommand(t, addr, "--validateDBE")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidationFailed)
}

func TestRun_InvalidAddress(t *testing.T) {
	err := New().Run(context.Background(),
		[]string{"hbase-preflight", "--validateDBE", "--addr", "zk://quorum:2181"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cluster address")
}
