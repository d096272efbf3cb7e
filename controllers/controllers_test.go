package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"accountservice/controllers"
	"accountservice/ratelimit"
	"accountservice/repository"
	"accountservice/routes"
	"accountservice/services"
)

func newTestRouter(t *testing.T, limit int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	log := zap.NewNop().Sugar()
	accountService := services.NewAccountService(store, log)
	productService := services.NewProductService(store, log)
	transactionService := services.NewTransactionService(store, accountService, log)
	storeService := services.NewStoreService(store, accountService, productService, log)

	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryCounter(), limit, time.Minute, log)

	r := gin.New()
	routes.SetupRoutes(r, limiter,
		controllers.NewAccountController(accountService, transactionService),
		controllers.NewProductController(productService),
		controllers.NewStoreController(storeService),
	)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("%s %s: invalid JSON body %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, payload
}

type accountBody struct {
	Account struct {
		ID      int             `json:"id"`
		Balance json.RawMessage `json:"balance"`
	} `json:"account"`
}

func decodeAccount(t *testing.T, payload map[string]json.RawMessage) (int, string) {
	t.Helper()
	var body accountBody
	raw, _ := json.Marshal(payload)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode account body: %v", err)
	}
	return body.Account.ID, strings.Trim(string(body.Account.Balance), `"`)
}

// Full deposit/withdraw flow over HTTP, including the overdraw rejection.
func TestAccountFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t, 100)

	code, payload := do(t, r, http.MethodPost, "/account/create", "")
	if code != http.StatusOK {
		t.Fatalf("create = %d", code)
	}
	id, balance := decodeAccount(t, payload)
	if id == 0 || balance != "0" {
		t.Fatalf("created account id=%d balance=%s", id, balance)
	}

	code, payload = do(t, r, http.MethodPost, "/account/deposit",
		`{"accountId": 1, "amount": 500}`)
	if code != http.StatusOK {
		t.Fatalf("deposit = %d: %v", code, payload)
	}
	if _, balance = decodeAccount(t, payload); balance != "500" {
		t.Fatalf("balance after deposit = %s, want 500", balance)
	}

	code, payload = do(t, r, http.MethodPost, "/account/withdraw",
		`{"accountId": 1, "amount": 200}`)
	if code != http.StatusOK {
		t.Fatalf("withdraw = %d: %v", code, payload)
	}
	if _, balance = decodeAccount(t, payload); balance != "300" {
		t.Fatalf("balance after withdraw = %s, want 300", balance)
	}

	code, payload = do(t, r, http.MethodPost, "/account/withdraw",
		`{"accountId": 1, "amount": 400}`)
	if code != http.StatusBadRequest {
		t.Fatalf("overdraw = %d, want 400: %v", code, payload)
	}

	code, payload = do(t, r, http.MethodGet, "/account/1", "")
	if code != http.StatusOK {
		t.Fatalf("find = %d", code)
	}
	if _, balance = decodeAccount(t, payload); balance != "300" {
		t.Fatalf("balance after overdraw = %s, want unchanged 300", balance)
	}
}

func TestFindAccountNonNumericIDIs404(t *testing.T) {
	r := newTestRouter(t, 100)

	code, _ := do(t, r, http.MethodGet, "/account/abc", "")
	if code != http.StatusNotFound {
		t.Fatalf("non-numeric id = %d, want 404", code)
	}
}

func TestMissingMandatoryFieldIs400(t *testing.T) {
	r := newTestRouter(t, 100)

	code, payload := do(t, r, http.MethodPost, "/account/deposit", `{"accountId": 1}`)
	if code != http.StatusBadRequest {
		t.Fatalf("missing amount = %d, want 400", code)
	}
	if !strings.Contains(string(payload["message"]), "Mandatory field is missing") {
		t.Fatalf("message = %s", payload["message"])
	}
}

// Purchase over HTTP: the transaction carries the price and the product,
// and the store list hides depleted products.
func TestStoreFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t, 100)

	do(t, r, http.MethodPost, "/account/create", "")
	do(t, r, http.MethodPost, "/account/deposit", `{"accountId": 1, "amount": 150}`)

	code, _ := do(t, r, http.MethodPost, "/product/create",
		`{"name": "Widget", "price": 100, "count": 1}`)
	if code != http.StatusOK {
		t.Fatalf("product create = %d", code)
	}

	code, payload := do(t, r, http.MethodPost, "/store/buy",
		`{"accountId": 1, "productId": 1}`)
	if code != http.StatusOK {
		t.Fatalf("buy = %d: %v", code, payload)
	}
	var transaction struct {
		Amount    json.RawMessage `json:"amount"`
		Type      string          `json:"type"`
		ProductID int             `json:"productId"`
	}
	if err := json.Unmarshal(payload["transaction"], &transaction); err != nil {
		t.Fatal(err)
	}
	if transaction.Type != "PURCHASE" || transaction.ProductID != 1 {
		t.Fatalf("transaction = %+v", transaction)
	}

	// The single unit is depleted; the store list is now empty.
	code, payload = do(t, r, http.MethodGet, "/store/list", "")
	if code != http.StatusOK {
		t.Fatalf("store list = %d", code)
	}
	var products []json.RawMessage
	if err := json.Unmarshal(payload["products"], &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Fatalf("store list has %d products, want 0", len(products))
	}

	// The catalog list still shows the row with count 0.
	code, payload = do(t, r, http.MethodGet, "/product/list", "")
	if code != http.StatusOK {
		t.Fatalf("product list = %d", code)
	}
	if err := json.Unmarshal(payload["products"], &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("product list has %d products, want 1", len(products))
	}
}

func TestDuplicateProductNameOverHTTP(t *testing.T) {
	r := newTestRouter(t, 100)

	do(t, r, http.MethodPost, "/product/create", `{"name": "Widget", "price": 100, "count": 1}`)
	code, payload := do(t, r, http.MethodPost, "/product/create",
		`{"name": "Widget", "price": 50, "count": 2}`)
	if code != http.StatusBadRequest {
		t.Fatalf("duplicate create = %d, want 400", code)
	}
	if !strings.Contains(string(payload["message"]), "Name should be unique") {
		t.Fatalf("message = %s", payload["message"])
	}
}

func TestRoutesAreRateLimited(t *testing.T) {
	r := newTestRouter(t, 2)

	for i := 0; i < 2; i++ {
		if code, _ := do(t, r, http.MethodGet, "/product/list", ""); code != http.StatusOK {
			t.Fatalf("request %d rejected", i+1)
		}
	}
	code, payload := do(t, r, http.MethodGet, "/product/list", "")
	if code != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", code)
	}
	if !strings.Contains(string(payload["message"]), "Too many requests") {
		t.Fatalf("message = %s", payload["message"])
	}

	// The quota is per route: another path still serves.
	if code, _ := do(t, r, http.MethodGet, "/store/list", ""); code != http.StatusOK {
		t.Fatalf("other route rejected: %d", code)
	}
}
