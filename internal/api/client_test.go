package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("key", "secret", WithBaseURL(srv.URL))
}

func TestDoSetsAuthHeaders(t *testing.T) {
	var gotKey, gotSecret, gotReqID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotSecret = r.Header.Get("X-Api-Secret")
		gotReqID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{"id": "acct_1", "name": "Test", "email": "o@x.com", "plan": "pro"},
		})
	})

	acct, err := client.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acct_1", acct.ID)
	assert.Equal(t, "key", gotKey)
	assert.Equal(t, "secret", gotSecret)
	assert.NotEmpty(t, gotReqID)
}

func TestDoMissingAPIKey(t *testing.T) {
	client := New("", "")
	_, err := client.Account(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAuthRequired))
}

func TestStatusTranslation(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{http.StatusUnauthorized, KindAuthFailed},
		{http.StatusForbidden, KindAuthFailed},
		{http.StatusNotFound, KindNotFound},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusGatewayTimeout, KindTimeout},
		{http.StatusInternalServerError, KindAPI},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.GetSubscriber(context.Background(), "a@x.com")
			require.Error(t, err)
			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestServerErrorMessagePreserved(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "email is malformed"},
		})
	})
	_, err := client.Subscribe(context.Background(), "bad")
	require.Error(t, err)
	apiErr, _ := AsError(err)
	assert.Contains(t, apiErr.Message, "email is malformed")
}

func TestTimeoutTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New("key", "secret",
		WithBaseURL(srv.URL),
		WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))

	err := client.Unsubscribe(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindTimeout), "got %v", err)
}

func TestImportSubscribersGeneratesBatchID(t *testing.T) {
	var batch ImportBatch
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": ImportResult{BatchID: batch.BatchID, Imported: len(batch.Subscribers)},
		})
	})

	result, err := client.ImportSubscribers(context.Background(), []ImportRecord{
		{Email: "a@x.com"},
		{Email: "b@x.com", Tags: []string{"vip"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, batch.BatchID)
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, batch.Subscribers, 2)
}

func TestListSubscribersQueryParams(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": Page[Subscriber]{Items: []Subscriber{{Email: "a@x.com"}}, Total: 1, Page: 2, PageSize: 50},
		})
	})

	page, err := client.ListSubscribers(context.Background(), "active", 2, 50)
	require.NoError(t, err)
	assert.Contains(t, query, "state=active")
	assert.Contains(t, query, "page=2")
	assert.Contains(t, query, "page_size=50")
	assert.Len(t, page.Items, 1)
}

func TestAddRemoveTagEndpoints(t *testing.T) {
	var paths []string
	var methods []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.AddTag(context.Background(), "a@x.com", "vip"))
	require.NoError(t, client.RemoveTag(context.Background(), "a@x.com", "vip"))

	assert.Equal(t, []string{"/subscribers/a@x.com/tags", "/subscribers/a@x.com/tags/vip"}, paths)
	assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, methods)
}
