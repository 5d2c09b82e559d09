package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeEmployees = `{"employees":[
	{"id":1,"name":"João","job":"Back-end","admission_date":"2019-12-02T00:00:00.000Z","phone":"5551234567890","image":"https://img.example/1.png"},
	{"id":2,"name":"Roberto","job":"Front-end","admission_date":"2020-03-12T00:00:00.000Z","phone":"5550321654321","image":"roberto.png"},
	{"id":"3","name":"Maria","job":"Front-end","admission_date":"2020-03-15","phone":"(55) 5502-8765","image":"maria.png"}
]}`

// unreachableURL returns the address of a server that has already shut down.
func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/employees"
	srv.Close()
	return url
}

func serveJSON(status int, body string, hits *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGetEmployees_Primary(t *testing.T) {
	primary := serveJSON(http.StatusOK, `[{"id":7,"name":"Ana","job":"Dev","admission_date":"2024-03-05","phone":"11999999999","image":"ana.png"}]`, nil)
	defer primary.Close()

	r := New(Options{PrimaryURL: primary.URL, Fallback: "/does/not/exist.json"})
	got, err := r.GetEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID())
	assert.Equal(t, "Ana", got[0].Name())
	assert.Equal(t, "2024-03-05", got[0].AdmissionDate())
}

func TestGetEmployees_FallbackWrapped(t *testing.T) {
	fallback := serveJSON(http.StatusOK, threeEmployees, nil)
	defer fallback.Close()

	r := New(Options{PrimaryURL: unreachableURL(t), Fallback: fallback.URL + "/db/db.json"})
	got, err := r.GetEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID())
	assert.Equal(t, "3", got[2].ID())
	assert.Equal(t, "maria.png", got[2].Image())
}

func TestGetEmployees_FallbackBareArrayFile(t *testing.T) {
	primary := serveJSON(http.StatusInternalServerError, `oops`, nil)
	defer primary.Close()
	path := writeFile(t, `[{"id":1,"name":"Bob","job":"Manager","phone":"21888888888"}]`)

	r := New(Options{PrimaryURL: primary.URL, Fallback: path})
	got, err := r.GetEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name())
	assert.Equal(t, "", got[0].Image())
}

func TestGetEmployees_PrimaryGarbageFallsBack(t *testing.T) {
	primary := serveJSON(http.StatusOK, `{"employees":[]}`, nil)
	defer primary.Close()
	path := writeFile(t, threeEmployees)

	r := New(Options{PrimaryURL: primary.URL, Fallback: path})
	got, err := r.GetEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGetEmployees_FallbackNotFound(t *testing.T) {
	fallback := serveJSON(http.StatusNotFound, `not found`, nil)
	defer fallback.Close()

	r := New(Options{PrimaryURL: unreachableURL(t), Fallback: fallback.URL + "/db/db.json"})
	_, err := r.GetEmployees(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "load employees")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestGetEmployees_FallbackMissingFile(t *testing.T) {
	r := New(Options{PrimaryURL: unreachableURL(t), Fallback: filepath.Join(t.TempDir(), "missing.json")})
	_, err := r.GetEmployees(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open fallback")
}

func TestGetEmployees_FallbackInvalidJSON(t *testing.T) {
	r := New(Options{PrimaryURL: unreachableURL(t), Fallback: writeFile(t, `{"employees": [`)})
	_, err := r.GetEmployees(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse fallback")
}

func TestGetEmployees_UnexpectedShapeIsEmpty(t *testing.T) {
	for _, body := range []string{`{"staff":[]}`, `{"employees":"nope"}`, `42`, `"text"`} {
		r := New(Options{PrimaryURL: unreachableURL(t), Fallback: writeFile(t, body)})
		got, err := r.GetEmployees(context.Background())
		require.NoError(t, err, body)
		assert.NotNil(t, got, body)
		assert.Empty(t, got, body)
	}
}

func TestGetEmployees_Cache(t *testing.T) {
	var hits int32
	primary := serveJSON(http.StatusOK, `[{"id":1,"name":"Ana"}]`, &hits)
	defer primary.Close()

	r := New(Options{PrimaryURL: primary.URL})
	for i := 0; i < 3; i++ {
		_, err := r.GetEmployees(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	r.ClearCache()
	_, err := r.GetEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestGetEmployees_CacheTTL(t *testing.T) {
	var hits int32
	primary := serveJSON(http.StatusOK, `[{"id":1,"name":"Ana"}]`, &hits)
	defer primary.Close()

	r := New(Options{PrimaryURL: primary.URL, CacheTTL: time.Millisecond})
	_, err := r.GetEmployees(context.Background())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = r.GetEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestGetEmployees_FailureNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	r := New(Options{PrimaryURL: unreachableURL(t), Fallback: path})

	_, err := r.GetEmployees(context.Background())
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(threeEmployees), 0o644))
	got, err := r.GetEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestNewDefaults(t *testing.T) {
	r := New(Options{})
	assert.Equal(t, DefaultPrimaryURL, r.primaryURL)
	assert.Equal(t, DefaultFallback, r.fallback)
	assert.Equal(t, 10*time.Second, r.client.Timeout)
}
