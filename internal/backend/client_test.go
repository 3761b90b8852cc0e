package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/drillkit/internal/models"
)

// recordedRequest is one request the test server observed.
type recordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

type testServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *testServer {
	t.Helper()
	ts := &testServer{handler: handler}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ts.mu.Lock()
		ts.requests = append(ts.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
		ts.mu.Unlock()
		if ts.handler != nil {
			ts.handler(w, r)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) recorded() []recordedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]recordedRequest(nil), ts.requests...)
}

func testClient(ts *testServer) *Client {
	return New(Config{
		BaseURL:    ts.URL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		RateLimit:  6000,
	})
}

func TestGetAllDrillsDecodesPayloads(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]DrillPayload{
			{ID: "b-1", Title: "Toe Taps", Duration: 5},
			{ID: "b-2", Title: "Cone Weave", Duration: 10},
		})
	})
	client := testClient(ts)

	drills, err := client.GetAllDrills(context.Background())
	require.NoError(t, err)
	require.Len(t, drills, 2)
	assert.Equal(t, "b-1", drills[0].ID)

	reqs := ts.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/drills", reqs[0].Path)
}

func TestDrillPayloadModelHydratesLocalIdentity(t *testing.T) {
	p := DrillPayload{ID: "b-1", Title: "Toe Taps", Duration: 5}
	d := p.Model()

	assert.NotEmpty(t, d.ID)
	assert.NotEqual(t, "b-1", d.ID)
	assert.Equal(t, "b-1", d.BackendID)
	assert.Equal(t, "Toe Taps", d.Title)

	// Two hydrations of the same payload are distinct local drills.
	assert.NotEqual(t, d.ID, p.Model().ID)
}

func TestCreateGroupSendsPayloadAndReturnsID(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "backend-group-1"})
	})
	client := testClient(ts)

	id, err := client.CreateGroup(context.Background(), "Warmups", "pre-match", []string{"b-1"}, false)
	require.NoError(t, err)
	assert.Equal(t, "backend-group-1", id)

	reqs := ts.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/groups", reqs[0].Path)

	var sent createGroupRequest
	require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
	assert.Equal(t, "Warmups", sent.Name)
	assert.Equal(t, []string{"b-1"}, sent.DrillIDs)
	assert.False(t, sent.IsLiked)
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "group not found"})
	})
	client := testClient(ts)

	err := client.DeleteGroup(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "group not found")
}

func TestEmptyIdentityShortCircuits(t *testing.T) {
	ts := newTestServer(t, nil)
	client := testClient(ts)
	ctx := context.Background()

	assert.ErrorIs(t, client.DeleteGroup(ctx, ""), ErrNoBackendID)
	assert.ErrorIs(t, client.AddDrillToGroup(ctx, "", "b-1"), ErrNoBackendID)
	assert.ErrorIs(t, client.AddDrillToGroup(ctx, "g-1", ""), ErrNoBackendID)
	assert.ErrorIs(t, client.ToggleDrillLike(ctx, ""), ErrNoBackendID)

	assert.Empty(t, ts.recorded(), "no request should reach the backend")
}

func TestToggleDrillLikeDebouncesDoubleTap(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := testClient(ts)
	ctx := context.Background()

	require.NoError(t, client.ToggleDrillLike(ctx, "b-1"))

	err := client.ToggleDrillLike(ctx, "b-1")
	assert.ErrorIs(t, err, ErrDebounced)

	// A different drill is not suppressed.
	require.NoError(t, client.ToggleDrillLike(ctx, "b-2"))

	assert.Len(t, ts.recorded(), 2)
}

func TestSyncPreferencesSendsFullSnapshot(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := testClient(ts)

	prefs := models.Preferences{
		Time:           models.TimeBucket45,
		Equipment:      []string{"ball", "cones"},
		TrainingStyle:  "individual",
		SelectedSkills: []string{"dribbling"},
	}
	require.NoError(t, client.SyncPreferences(context.Background(), prefs))

	reqs := ts.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/preferences", reqs[0].Path)

	var sent models.Preferences
	require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
	assert.Equal(t, prefs, sent)
}

func TestFetchPreferences(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Preferences{TrainingStyle: "group"})
	})
	client := testClient(ts)

	prefs, err := client.FetchPreferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "group", prefs.TrainingStyle)
}

func TestGetAllDrillGroups(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]GroupPayload{
			{ID: "bg-1", Name: "Liked Drills", IsLiked: true, Drills: []DrillPayload{{ID: "b-1", Title: "Toe Taps"}}},
			{ID: "bg-2", Name: "Warmups", Drills: nil},
		})
	})
	client := testClient(ts)

	groups, err := client.GetAllDrillGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.True(t, groups[0].IsLiked)
	assert.Equal(t, "Warmups", groups[1].Name)
}
