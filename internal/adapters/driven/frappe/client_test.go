package frappe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/config"
	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		URL:            server.URL,
		APIKey:         "key123",
		APISecret:      "secret456",
		VerifySSL:      true,
		TimeoutSeconds: 5,
		RateLimit:      1000,
	}
	client, err := New(cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	return client
}

func TestNew_RequiresCredentials(t *testing.T) {
	cfg := &config.Config{URL: "http://localhost:8000", RateLimit: 1}
	_, err := New(cfg, zap.NewNop(), nil)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestClient_CreateDocument(t *testing.T) {
	var gotAuth string
	var gotBody domain.Record

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/resource/Sales Invoice", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"name": "SINV-0001", "customer": "ACME Corp"},
		})
	}))

	doc := domain.Record{"customer": "ACME Corp", "doctype": "Sales Invoice"}
	result, err := client.CreateDocument(context.Background(), domain.DocTypeSalesInvoice, doc)

	require.NoError(t, err)
	assert.Equal(t, "token key123:secret456", gotAuth)
	assert.Equal(t, "ACME Corp", gotBody["customer"])
	assert.Equal(t, "SINV-0001", result["name"])
}

func TestClient_GetDocument_NotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"exc_type": "DoesNotExistError"})
	}))

	_, err := client.GetDocument(context.Background(), domain.DocTypeCustomer, "Nobody")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "resource not found")

	opErr := domain.AsOperationError(err)
	assert.Equal(t, domain.CodeNotFound, opErr.Code)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{401, domain.CodeAuthentication},
		{403, domain.CodePermission},
		{404, domain.CodeNotFound},
		{417, domain.CodeValidation},
		{500, domain.CodeGeneric},
	}

	for _, tt := range tests {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{"message": "boom"})
		}))

		_, err := client.GetDocument(context.Background(), domain.DocTypeItem, "X")
		require.Error(t, err)
		assert.Equal(t, tt.code, domain.AsOperationError(err).Code, "status %d", tt.status)
	}
}

func TestClient_UpdateDocument_MergesFullDocument(t *testing.T) {
	var putBody domain.Record

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"name":   "TASK-0001",
					"status": "Open",
					"items":  []any{map[string]any{"item_code": "WIDGET"}},
				},
			})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"name": "TASK-0001", "status": "Completed"},
			})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))

	result, err := client.UpdateDocument(context.Background(), domain.DocTypeTask, "TASK-0001", domain.Record{"status": "Completed"})

	require.NoError(t, err)
	assert.Equal(t, "Completed", result["status"])
	// The write carries the whole merged document, not just the patch,
	// so untouched child tables survive the update.
	assert.Equal(t, "Completed", putBody["status"])
	assert.NotNil(t, putBody["items"])
}

func TestClient_ListDocuments_QueryEncoding(t *testing.T) {
	var gotQuery map[string]string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"filters":           r.URL.Query().Get("filters"),
			"fields":            r.URL.Query().Get("fields"),
			"limit_page_length": r.URL.Query().Get("limit_page_length"),
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []any{map[string]any{"name": "CUST-0001"}},
		})
	}))

	filters := []domain.Filter{domain.Eq("status", "Open"), domain.Like("name", "%acme%")}
	records, err := client.ListDocuments(context.Background(), domain.DocTypeCustomer, filters, []string{"name", "status"}, 20)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, `[["status","=","Open"],["name","like","%acme%"]]`, gotQuery["filters"])
	assert.JSONEq(t, `["name","status"]`, gotQuery["fields"])
	assert.Equal(t, "20", gotQuery["limit_page_length"])
}

func TestClient_ListDocuments_ZeroLimitMeansUnbounded(t *testing.T) {
	var gotLimit string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit_page_length")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))

	_, err := client.ListDocuments(context.Background(), domain.DocTypeTask, nil, nil, 0)

	require.NoError(t, err)
	assert.Equal(t, "0", gotLimit)
}

func TestClient_SubmitDocument_FetchesThenSubmits(t *testing.T) {
	var submitArgs domain.Record

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/resource/Sales Order/SO-0001":
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"name": "SO-0001", "docstatus": 0},
			})
		case "/api/method/frappe.client.submit":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&submitArgs))
			json.NewEncoder(w).Encode(map[string]any{
				"message": map[string]any{"name": "SO-0001", "docstatus": 1},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	result, err := client.SubmitDocument(context.Background(), domain.DocTypeSalesOrder, "SO-0001")

	require.NoError(t, err)
	assert.Equal(t, float64(1), result["docstatus"])

	doc, ok := submitArgs["doc"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SO-0001", doc["name"])
}

func TestClient_CancelDocument(t *testing.T) {
	var args domain.Record

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/method/frappe.client.cancel", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&args))
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"name": "SINV-0001", "docstatus": 2},
		})
	}))

	result, err := client.CancelDocument(context.Background(), domain.DocTypeSalesInvoice, "SINV-0001")

	require.NoError(t, err)
	assert.Equal(t, float64(2), result["docstatus"])
	assert.Equal(t, "Sales Invoice", args["doctype"])
	assert.Equal(t, "SINV-0001", args["name"])
}

func TestClient_CallMethod_WrapsScalarMessage(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"message": "ok"})
	}))

	result, err := client.CallMethod(context.Background(), "frappe.ping", nil)

	require.NoError(t, err)
	assert.Equal(t, "ok", result["message"])
}

func TestClient_SessionLogin(t *testing.T) {
	var loginForm string
	loggedIn := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/method/login" {
			body := make([]byte, r.ContentLength)
			r.Body.Read(body)
			loginForm = string(body)
			loggedIn = true
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc123"})
			w.WriteHeader(http.StatusOK)
			return
		}
		require.True(t, loggedIn, "request before login")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"name": "CUST-0001"},
		})
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		URL:            server.URL,
		Username:       "admin",
		Password:       "hunter2",
		VerifySSL:      true,
		TimeoutSeconds: 5,
		RateLimit:      1000,
	}
	client, err := New(cfg, zap.NewNop(), nil)
	require.NoError(t, err)

	_, err = client.GetDocument(context.Background(), domain.DocTypeCustomer, "CUST-0001")

	require.NoError(t, err)
	assert.Contains(t, loginForm, "usr=admin")
	assert.Contains(t, loginForm, "pwd=hunter2")
}
