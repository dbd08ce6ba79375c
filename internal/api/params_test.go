package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRFQListParamsOmitsAbsentFilters(t *testing.T) {
	v := RFQListParams{}.Values()
	require.Empty(t, v.Encode())

	v = RFQListParams{Status: "published", Page: Page{Page: 2, Limit: 20}}.Values()
	require.Equal(t, "published", v.Get("status"))
	require.Equal(t, "2", v.Get("page"))
	require.Equal(t, "20", v.Get("limit"))
	require.False(t, v.Has("category"))
	require.False(t, v.Has("building"))
	require.False(t, v.Has("search"))
}

func TestVendorListParamsValues(t *testing.T) {
	v := VendorListParams{City: "Berlin", MinRating: 3.5, Featured: true}.Values()
	require.Equal(t, "Berlin", v.Get("city"))
	require.Equal(t, "3.5", v.Get("minRating"))
	require.Equal(t, "true", v.Get("featured"))
	require.False(t, v.Has("category"))
	require.False(t, v.Has("page"))

	// zero rating and false featured are omitted, not sent as "0"/"false"
	v = VendorListParams{Category: "plumbing"}.Values()
	require.Equal(t, "category=plumbing", v.Encode())
}

func TestPageValuesZeroIsEmpty(t *testing.T) {
	require.Empty(t, Page{}.Values().Encode())
	require.Equal(t, "limit=10&page=1", Page{Page: 1, Limit: 10}.Values().Encode())
}

func TestCacheKeyStableUnderParamOrder(t *testing.T) {
	ctx := context.Background()
	a := RFQListParams{Status: "published", Category: "hvac"}.Values()
	b := RFQListParams{Category: "hvac", Status: "published"}.Values()
	require.Equal(t, cacheKey(ctx, "/rfqs", a), cacheKey(ctx, "/rfqs", b))
	require.Equal(t, "/rfqs", cacheKey(ctx, "/rfqs", nil))
}

func TestCacheKeySeparatesRequesters(t *testing.T) {
	anon := context.Background()
	alice := WithToken(context.Background(), "token-alice")
	bob := WithToken(context.Background(), "token-bob")

	require.NotEqual(t, cacheKey(alice, "/invoices", nil), cacheKey(bob, "/invoices", nil))
	require.NotEqual(t, cacheKey(anon, "/invoices", nil), cacheKey(alice, "/invoices", nil))

	// the same session keeps hitting its own entry
	require.Equal(t, cacheKey(alice, "/invoices", nil), cacheKey(WithToken(context.Background(), "token-alice"), "/invoices", nil))
}
