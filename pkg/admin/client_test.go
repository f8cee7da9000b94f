package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestConnect_RejectsInvalidAddresses(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"bad scheme", "zk://quorum:2181"},
		{"missing host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := Connect(tt.addr)
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestListTableSchemas(t *testing.T) {
	srv := newGateway(t, map[string]string{
		"/": `{"table":[{"name":"t1"},{"name":"t2"}]}`,
		"/t1/schema": `{"name":"t1","IS_META":"false","ColumnSchema":[
			{"name":"cf1","DATA_BLOCK_ENCODING":"FAST_DIFF","BLOOMFILTER":"ROW","VERSIONS":"1"}]}`,
		"/t2/schema": `{"name":"t2","ColumnSchema":[
			{"name":"a","DATA_BLOCK_ENCODING":"NONE"},
			{"name":"b","DATA_BLOCK_ENCODING":"PREFIX_TREE"}]}`,
	})

	client, err := Connect(srv.URL)
	require.NoError(t, err)
	defer client.Close()

	schemas, err := client.ListTableSchemas(context.Background())
	require.NoError(t, err)
	require.Len(t, schemas, 2)

	t1 := schemas[0]
	assert.Equal(t, "t1", t1.Name)
	assert.Equal(t, "false", t1.Attributes["IS_META"])
	require.Len(t, t1.ColumnFamilies, 1)
	assert.Equal(t, "cf1", t1.ColumnFamilies[0].Name)
	assert.Equal(t, "FAST_DIFF", t1.ColumnFamilies[0].Value(AttrDataBlockEncoding))
	assert.Equal(t, "ROW", t1.ColumnFamilies[0].Value("BLOOMFILTER"))

	t2 := schemas[1]
	require.Len(t, t2.ColumnFamilies, 2)
	assert.Equal(t, "PREFIX_TREE", t2.ColumnFamilies[1].Value(AttrDataBlockEncoding))
}

func TestListTableSchemas_EmptyCluster(t *testing.T) {
	srv := newGateway(t, map[string]string{
		"/": `{"table":[]}`,
	})

	client, err := Connect(srv.URL)
	require.NoError(t, err)
	defer client.Close()

	schemas, err := client.ListTableSchemas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, schemas)
}

func TestListTableSchemas_SchemaFetchFailure(t *testing.T) {
	srv := newGateway(t, map[string]string{
		"/": `{"table":[{"name":"gone"}]}`,
		// no /gone/schema route: the gateway answers 404
	})

	client, err := Connect(srv.URL)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ListTableSchemas(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `schema for table "gone"`)
}

func TestListTableSchemas_GatewayUnreachable(t *testing.T) {
	srv := newGateway(t, nil)
	addr := srv.URL
	srv.Close()

	client, err := Connect(addr)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ListTableSchemas(context.Background())
	assert.Error(t, err)
}

func TestClusterVersion(t *testing.T) {
	srv := newGateway(t, map[string]string{
		"/version/cluster": `{"Version":"1.4.13"}`,
	})

	client, err := Connect(srv.URL)
	require.NoError(t, err)
	defer client.Close()

	v, err := client.ClusterVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.13", v)
}

func TestColumnFamilySchema_ValueAbsentAttribute(t *testing.T) {
	cf := ColumnFamilySchema{Name: "cf", Attributes: map[string]string{}}
	assert.Equal(t, "", cf.Value(AttrDataBlockEncoding))
}
