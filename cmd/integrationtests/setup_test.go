package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-registry/internal/auctionService"
	"auction-registry/internal/repository"
	"auction-registry/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with in-memory repositories for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryAuctionStore()
	users := repository.NewMemoryUserDirectory()
	registry := auction.NewAuctionService(store, users)
	return server.SetupRouter(registry)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data extracts the data envelope field as an object
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}

// list extracts the data envelope field as an array
func list(t *testing.T, resp map[string]any) []any {
	t.Helper()

	l, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no data array: %v", resp)
	}
	return l
}
