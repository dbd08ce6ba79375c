package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

func newTestClients(t *testing.T, handler http.Handler, cache Cache) *Clients {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClients(New(srv.URL, 5*time.Second, cache, time.Minute))
}

func TestQueryAttachesBearerFromContext(t *testing.T) {
	var got string
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","role":"vendor"}}}`))
	}), nil)

	ctx := WithToken(context.Background(), "tok-123")
	user, err := clients.Auth.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", got)
	require.Equal(t, "u1", user.ID)
}

func TestQueryOmitsAuthorizationWithoutToken(t *testing.T) {
	var got string
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"categories":[]}}`))
	}), nil)

	_, err := clients.Categories.Tree(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestQueryUnwrapsEnvelope(t *testing.T) {
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rfqs", r.URL.Path)
		require.Equal(t, "published", r.URL.Query().Get("status"))
		w.Write([]byte(`{"success":true,"data":{"rfqs":[{"id":"r1","title":"Roof works"}],"pagination":{"page":1,"limit":10,"total":1,"pages":1}}}`))
	}), nil)

	list, err := clients.RFQs.List(context.Background(), RFQListParams{Status: "published"})
	require.NoError(t, err)
	require.Len(t, list.RFQs, 1)
	require.Equal(t, "Roof works", list.RFQs[0].Title)
	require.Equal(t, 1, list.Pagination.Total)
}

func TestErrorCarriesStatusAndMessage(t *testing.T) {
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"rfq not found"}`))
	}), nil)

	_, err := clients.RFQs.Get(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, IsNotFound(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "rfq not found", apiErr.Message)
}

func TestUnauthorizedIsDetectable(t *testing.T) {
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token expired"}`))
	}), nil)

	_, err := clients.Auth.Me(context.Background())
	require.True(t, IsUnauthorized(err))
}

func TestEnvelopeFailureWithoutHTTPError(t *testing.T) {
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"deadline is in the past"}`))
	}), nil)

	_, err := clients.RFQs.Create(context.Background(), models.CreateRFQ{Title: "x"})
	require.ErrorContains(t, err, "deadline is in the past")
}

func TestQueryServedFromCacheUntilMutation(t *testing.T) {
	var hits int64
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"success":true,"data":{"rfq":{"id":"r2"}}}`))
			return
		}
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"success":true,"data":{"rfqs":[],"pagination":{}}}`))
	}), NewMemoryCache())

	ctx := context.Background()
	_, err := clients.RFQs.List(ctx, RFQListParams{})
	require.NoError(t, err)
	_, err = clients.RFQs.List(ctx, RFQListParams{})
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt64(&hits), "second list should be a cache hit")

	// a mutation on the same tag evicts the cached list
	_, err = clients.RFQs.Create(ctx, models.CreateRFQ{Title: "New RFQ"})
	require.NoError(t, err)

	_, err = clients.RFQs.List(ctx, RFQListParams{})
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt64(&hits), "list after mutation must refetch")
}

func TestCachedQueriesArePartitionedByRequester(t *testing.T) {
	var upstream int64
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&upstream, 1)
		switch r.Header.Get("Authorization") {
		case "Bearer token-alice":
			w.Write([]byte(`{"success":true,"data":{"invoices":[{"id":"inv-alice"}],"pagination":{}}}`))
		case "Bearer token-bob":
			w.Write([]byte(`{"success":true,"data":{"invoices":[{"id":"inv-bob"}],"pagination":{}}}`))
		default:
			w.Write([]byte(`{"success":true,"data":{"invoices":[],"pagination":{}}}`))
		}
	}), NewMemoryCache())

	alice := WithToken(context.Background(), "token-alice")
	bob := WithToken(context.Background(), "token-bob")

	list, err := clients.Invoices.List(alice, StatusListParams{})
	require.NoError(t, err)
	require.Equal(t, "inv-alice", list.Invoices[0].ID)

	// bob's first call must not be served alice's cached payload
	list, err = clients.Invoices.List(bob, StatusListParams{})
	require.NoError(t, err)
	require.Equal(t, "inv-bob", list.Invoices[0].ID)
	require.EqualValues(t, 2, atomic.LoadInt64(&upstream))

	// repeat calls still hit each requester's own cache entry
	list, err = clients.Invoices.List(alice, StatusListParams{})
	require.NoError(t, err)
	require.Equal(t, "inv-alice", list.Invoices[0].ID)
	require.EqualValues(t, 2, atomic.LoadInt64(&upstream))
}

func TestMutationOnOtherTagKeepsCache(t *testing.T) {
	var listHits int64
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"success":true,"data":{"building":{"id":"b1"}}}`))
		default:
			atomic.AddInt64(&listHits, 1)
			w.Write([]byte(`{"success":true,"data":{"vendors":[],"pagination":{}}}`))
		}
	}), NewMemoryCache())

	ctx := context.Background()
	_, err := clients.Vendors.List(ctx, VendorListParams{})
	require.NoError(t, err)

	_, err = clients.Buildings.Create(ctx, models.Building{Name: "HQ"})
	require.NoError(t, err)

	_, err = clients.Vendors.List(ctx, VendorListParams{})
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt64(&listHits))
}

func TestDistinctParamsGetDistinctCacheEntries(t *testing.T) {
	var hits int64
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"success":true,"data":{"rfqs":[],"pagination":{}}}`))
	}), NewMemoryCache())

	ctx := context.Background()
	_, err := clients.RFQs.List(ctx, RFQListParams{Status: "published"})
	require.NoError(t, err)
	_, err = clients.RFQs.List(ctx, RFQListParams{Status: "draft"})
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt64(&hits))
}

func TestAwardInvalidatesRFQAndBidCaches(t *testing.T) {
	var rfqHits int64
	clients := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"success":true,"data":{"contract":{"id":"c1"}}}`))
		case r.URL.Path == "/rfqs/r1":
			atomic.AddInt64(&rfqHits, 1)
			w.Write([]byte(`{"success":true,"data":{"rfq":{"id":"r1"}}}`))
		default:
			w.Write([]byte(`{"success":true,"data":{"bids":[]}}`))
		}
	}), NewMemoryCache())

	ctx := context.Background()
	_, err := clients.RFQs.Get(ctx, "r1")
	require.NoError(t, err)
	_, err = clients.RFQs.Get(ctx, "r1")
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt64(&rfqHits))

	_, err = clients.Contracts.Award(ctx, "r1", "b1")
	require.NoError(t, err)

	_, err = clients.RFQs.Get(ctx, "r1")
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt64(&rfqHits))
}
