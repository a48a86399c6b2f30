package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// pagedServer serves `total` items in server order with full pagination
// metadata, counting requests.
func pagedServer(t *testing.T, total int) (*httptest.Server, *int) {
	t.Helper()

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		start := (page - 1) * limit
		end := start + limit
		if end > total {
			end = total
		}

		items := "["
		for i := start; i < end; i++ {
			if i > start {
				items += ","
			}
			items += fmt.Sprintf(`{"id":"item-%d","name":"Item %d"}`, i, i)
		}
		items += "]"

		totalPages := (total + limit - 1) / limit
		fmt.Fprintf(w, `{"success":true,"data":%s,"meta":{"total":%d,"page":%d,"limit":%d,"totalPages":%d}}`,
			items, total, page, limit, totalPages)
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

func listFunc(c *client.Client) client.ListFunc[testItem] {
	return func(ctx context.Context, page, limit int) ([]testItem, *dto.Pagination, error) {
		return client.Do[[]testItem](ctx, c, http.MethodGet, "/note", nil, client.Query{
			"page":  strconv.Itoa(page),
			"limit": strconv.Itoa(limit),
		})
	}
}

func TestFetchAll_ThreePagesInServerOrder(t *testing.T) {
	server, requests := pagedServer(t, 250)
	c := client.New(server.URL, "token")

	items, err := client.FetchAll(context.Background(), 100, listFunc(c))

	require.NoError(t, err)
	assert.Equal(t, 3, *requests)
	require.Len(t, items, 250)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("item-%d", i), item.ID)
	}
}

func TestFetchAll_EmptyFirstPage(t *testing.T) {
	server, requests := pagedServer(t, 0)
	c := client.New(server.URL, "token")

	items, err := client.FetchAll(context.Background(), 100, listFunc(c))

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, *requests)
}

func TestFetchAll_ExactPageBoundary(t *testing.T) {
	server, requests := pagedServer(t, 200)
	c := client.New(server.URL, "token")

	items, err := client.FetchAll(context.Background(), 100, listFunc(c))

	require.NoError(t, err)
	assert.Len(t, items, 200)
	assert.Equal(t, 2, *requests)
}

func TestFetchAll_HeuristicWithoutMeta(t *testing.T) {
	// No metadata block: keep fetching while pages come back full.
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		switch page {
		case 1:
			items := "["
			for i := 0; i < 100; i++ {
				if i > 0 {
					items += ","
				}
				items += fmt.Sprintf(`{"id":"i%d","name":"x"}`, i)
			}
			items += "]"
			fmt.Fprintf(w, `{"success":true,"data":%s}`, items)
		default:
			fmt.Fprint(w, `{"success":true,"data":[{"id":"last","name":"x"}]}`)
		}
	}))
	defer server.Close()

	c := client.New(server.URL, "token")
	items, err := client.FetchAll(context.Background(), 100, listFunc(c))

	require.NoError(t, err)
	assert.Len(t, items, 101)
	assert.Equal(t, 2, requests)
}

func TestFetchAll_FailureDiscardsPartialResults(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			items := "["
			for i := 0; i < 100; i++ {
				if i > 0 {
					items += ","
				}
				items += fmt.Sprintf(`{"id":"i%d","name":"x"}`, i)
			}
			items += "]"
			fmt.Fprintf(w, `{"success":true,"data":%s,"meta":{"total":150,"page":1,"limit":100,"totalPages":2}}`, items)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success":false,"error":{"code":"InternalError","message":"page 2 broke"}}`)
	}))
	defer server.Close()

	c := client.New(server.URL, "token")
	items, err := client.FetchAll(context.Background(), 100, listFunc(c))

	require.Error(t, err)
	assert.True(t, client.IsCode(err, client.CodeInternalError))
	assert.Nil(t, items)
	assert.Equal(t, 2, requests)
}

func TestFetchAll_ZeroPageSizeUsesDefault(t *testing.T) {
	server, _ := pagedServer(t, 5)
	c := client.New(server.URL, "token")

	var gotLimit int
	items, err := client.FetchAll(context.Background(), 0,
		func(ctx context.Context, page, limit int) ([]testItem, *dto.Pagination, error) {
			gotLimit = limit
			return listFunc(c)(ctx, page, limit)
		})

	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, client.DefaultPageSize, gotLimit)
}
