package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cinta "github.com/aretw0/cinta"
	cintahttp "github.com/aretw0/cinta/internal/adapters/http"
	"github.com/aretw0/cinta/internal/testutils"
	"github.com/aretw0/cinta/pkg/adapters/memory"
	"github.com/aretw0/cinta/pkg/domain"
	"github.com/aretw0/cinta/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, ports.RunStore) {
	t.Helper()

	store := memory.NewStore()
	engine, err := cinta.New(testutils.AcceptOneA(t), cinta.WithStore(store))
	require.NoError(t, err)

	handler := cintahttp.NewHandler(engine, cintahttp.WithStore(store))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, store
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer_CreateRun(t *testing.T) {
	srv, store := newTestServer(t)

	resp := postJSON(t, srv.URL+"/runs", map[string]any{"input": "a"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.RunResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Accepted)
	assert.Equal(t, "qf", result.FinalState)
	assert.Equal(t, []string{"[q0]a", "[qf]a"}, result.IDs)

	// The run was persisted and is retrievable by its ID.
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)

	getResp, err := http.Get(srv.URL + "/runs/" + ids[0])
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var stored domain.RunResult
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&stored))
	assert.Equal(t, result.IDs, stored.IDs)
}

func TestServer_CreateRunWithMaxSteps(t *testing.T) {
	store := memory.NewStore()
	engine, err := cinta.New(testutils.Spinner(t), cinta.WithStore(store))
	require.NoError(t, err)

	srv := httptest.NewServer(cintahttp.NewHandler(engine, cintahttp.WithStore(store)))
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/runs", map[string]any{"input": "a", "max_steps": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.RunResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 3, result.Steps)
	assert.Equal(t, domain.StepLimitMarker, result.IDs[len(result.IDs)-1])
}

func TestServer_CreateRunInlineDefinition(t *testing.T) {
	srv, store := newTestServer(t)

	body := map[string]any{
		"input": "x",
		"definition": map[string]any{
			"name":          "inline",
			"states":        []string{"s0", "sf"},
			"tape_alphabet": []string{"x", "B"},
			"initial_state": "s0",
			"accept_states": []string{"sf"},
			"transitions": []map[string]any{
				{"state": "s0", "read": "x", "write": "x", "move": "S", "next": "sf"},
			},
		},
	}

	resp := postJSON(t, srv.URL+"/runs", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.RunResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Accepted)
	assert.Equal(t, "sf", result.FinalState)

	// One-shot runs are never persisted.
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestServer_CreateRunInvalidInlineDefinition(t *testing.T) {
	srv, _ := newTestServer(t)

	body := map[string]any{
		"input": "x",
		"definition": map[string]any{
			"states":        []string{"s0"},
			"tape_alphabet": []string{"x", "B"},
			"initial_state": "missing",
		},
	}

	resp := postJSON(t, srv.URL+"/runs", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_CreateRunMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/runs", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_GetRunNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/runs/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ListRuns(t *testing.T) {
	srv, _ := newTestServer(t)

	postJSON(t, srv.URL+"/runs", map[string]any{"input": "a"})
	postJSON(t, srv.URL+"/runs", map[string]any{"input": ""})

	resp, err := http.Get(srv.URL + "/runs")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body["runs"], 2)
}

func TestServer_GetDefinition(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/definition")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var def map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&def))
	assert.Equal(t, "q0", def["initial_state"])
}

func TestServer_GetGraph(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/graph")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "graph LR")
}

func TestServer_Healthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	postJSON(t, srv.URL+"/runs", map[string]any{"input": "a"})

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "cinta_runs_total")
}
