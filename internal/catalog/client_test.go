package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (fn roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return fn(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(t *testing.T, fn roundTripFunc, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: fn})}, opts...)
	client, err := NewClient("https://eco-backend-lime.vercel.app/", opts...)
	require.NoError(t, err)
	return client
}

func TestListProductsIssuesSingleGet(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		calls++
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "https://eco-backend-lime.vercel.app/api/products", req.URL.String())
		assert.Empty(t, req.URL.RawQuery)
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		return jsonResponse(http.StatusOK, `[{"id":"1","name":"Nike Air Max","currentPrice":12000},{"_id":"2","name":"Power Bank","currentPrice":2500}]`), nil
	})

	records, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, records, 2)
	assert.Equal(t, ProductID("2"), records[1].ID)
}

func TestListProductsEmptyArray(t *testing.T) {
	client := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, ` [] `), nil
	})
	records, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListProductsFailures(t *testing.T) {
	cases := []struct {
		name string
		fn   roundTripFunc
		msg  string
	}{
		{
			name: "non 2xx",
			fn: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadGateway, `{"error":"upstream"}`), nil
			},
			msg: "catalog request failed",
		},
		{
			name: "object body",
			fn: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"products":[]}`), nil
			},
			msg: "catalog response is not an array",
		},
		{
			name: "null body",
			fn: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `null`), nil
			},
			msg: "catalog response is not an array",
		},
		{
			name: "malformed",
			fn: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `[{"id":`), nil
			},
			msg: "decode catalog response",
		},
		{
			name: "transport",
			fn: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			msg: "execute catalog request",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.fn)
			records, err := client.ListProducts(context.Background())
			require.Error(t, err)
			assert.Nil(t, records)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDependency))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	_, err := NewClient("   ")
	assert.ErrorIs(t, err, errBaseURLRequired)

	_, err = NewClient("ftp://catalog.local")
	assert.Error(t, err)

	_, err = NewClient("not a url")
	assert.Error(t, err)

	client, err := NewClient("http://10.132.72.106:5000", WithProductsPath("products"), WithTimeout(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://10.132.72.106:5000/products", client.ProductsURL())
	assert.Equal(t, 2*time.Second, client.httpClient.Timeout)
}

func TestListProductsNilClient(t *testing.T) {
	var client *Client
	_, err := client.ListProducts(context.Background())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDependency))
}
