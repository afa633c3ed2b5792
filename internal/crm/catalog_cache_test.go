package crm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedStore_CatalogFetchedOnce(t *testing.T) {
	client := &fakeQueryClient{result: &QueryResult{Records: []Record{
		{"Intended_Product__c": "Phone System"},
	}}}
	store := NewCachedStore(NewSOQLStore(client, true), time.Minute)

	first, err := store.ProductCatalog(context.Background())
	require.NoError(t, err)
	second, err := store.ProductCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, client.soql, 1, "second call must be served from cache")
}

func TestCachedStore_ErrorsAreNotCached(t *testing.T) {
	client := &fakeQueryClient{err: context.DeadlineExceeded}
	store := NewCachedStore(NewSOQLStore(client, true), time.Minute)

	_, err := store.ProductCatalog(context.Background())
	require.Error(t, err)

	client.err = nil
	client.result = &QueryResult{Records: []Record{{"Intended_Product__c": "Phone System"}}}

	catalog, err := store.ProductCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, catalog.Found)
	assert.Len(t, client.soql, 2)
}

func TestCachedStore_OtherQueriesPassThrough(t *testing.T) {
	client := &fakeQueryClient{result: &QueryResult{Records: []Record{leadRow()}}}
	store := NewCachedStore(NewSOQLStore(client, true), time.Minute)

	_, err := store.Lead(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)
	_, err = store.Lead(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)

	assert.Len(t, client.soql, 2)
}
