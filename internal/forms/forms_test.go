package forms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"pubquiz-admin/internal/api"
	"pubquiz-admin/internal/store"
)

// fakeBackend is a canned-response server used by the form tests. It
// counts requests so tests can assert that client-side validation and
// guards issue no network call at all.
type fakeBackend struct {
	mux      *http.ServeMux
	server   *httptest.Server
	requests atomic.Int64
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{mux: http.NewServeMux()}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) handle(pattern string, status int, body any) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	})
}

// echo registers a handler that replies with the decoded request body,
// mimicking a create/update endpoint
func echoHandler[T any](b *fakeBackend, pattern string, status int, mutate func(*T)) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		var record T
		json.NewDecoder(r.Body).Decode(&record)
		if mutate != nil {
			mutate(&record)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(record)
	})
}

func (b *fakeBackend) client() *api.Client {
	return api.NewClient(b.server.URL, nil)
}

func newTestStore() *store.Store {
	return store.New()
}

func TestSubmitGuardSerializes(t *testing.T) {
	var g submitGuard
	assert.NoError(t, g.begin())
	assert.ErrorIs(t, g.begin(), ErrInFlight)
	g.end()
	assert.NoError(t, g.begin())
}

func TestAlwaysConfirm(t *testing.T) {
	assert.True(t, AlwaysConfirm("anything"))
}
