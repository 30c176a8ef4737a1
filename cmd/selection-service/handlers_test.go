package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thalikart/food-order-backend/internal/config"
	"github.com/thalikart/food-order-backend/internal/httpx"
	"github.com/thalikart/food-order-backend/internal/selection"
	"github.com/thalikart/food-order-backend/internal/server"
)

func newRouter(sink io.Writer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.RequestID())
	registerRoutes(r, selection.NewReporter(sink, "₹"))
	return r
}

func postSelection(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/log_selected_items/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func logLines(buf *bytes.Buffer) []string {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// ===== POST /log_selected_items/ =====
func TestLogSelection_Scenario(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	body := `{"selectedItems":[{"id":"3","name":"Special Thali","price":199,"quantity":1}]}`
	w := postSelection(newRouter(&sink), body)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := `{"message":"Items logged successfully!","items":[{"id":"3","name":"Special Thali","price":199,"quantity":1}]}`
	if w.Body.String() != want {
		t.Fatalf("body=%s\nwant=%s", w.Body.String(), want)
	}
	lines := logLines(&sink)
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "Special Thali (x1) - ₹199") {
		t.Fatalf("log lines=%q", lines)
	}
}

func TestLogSelection_OneLinePerItem(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	items := `[{"id":"1","name":"Normal Thali","price":129,"quantity":2},` +
		`{"id":"4","name":"Special Desi Ghee Desi Thath","price":289,"quantity":3},` +
		`{"id":"x","name":"Chaas","price":12.5,"quantity":0}]`
	w := postSelection(newRouter(&sink), `{"selectedItems":`+items+`}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Message string          `json:"message"`
		Items   json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if got.Message != selection.ItemsLogged || string(got.Items) != items {
		t.Fatalf("message=%q items=%s", got.Message, got.Items)
	}

	wantLines := []string{
		"Normal Thali (x2) - ₹258",
		"Special Desi Ghee Desi Thath (x3) - ₹867",
		"Chaas (x0) - ₹0",
	}
	lines := logLines(&sink)
	if len(lines) != len(wantLines) {
		t.Fatalf("lines=%q", lines)
	}
	for i, wl := range wantLines {
		if !strings.HasSuffix(lines[i], wl) {
			t.Fatalf("line %d=%q want suffix %q", i, lines[i], wl)
		}
	}
}

func TestLogSelection_EchoesPriceLiteral(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	items := `[{"id":"2","name":"Veg Thali","price":1.49e2,"quantity":2},{"id":"1","name":"Normal Thali","price":129.00,"quantity":1}]`
	w := postSelection(newRouter(&sink), `{"selectedItems":`+items+`}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := `{"message":"Items logged successfully!","items":` + items + `}`
	if w.Body.String() != want {
		t.Fatalf("body=%s\nwant=%s", w.Body.String(), want)
	}
	lines := logLines(&sink)
	if len(lines) != 2 || !strings.HasSuffix(lines[0], "Veg Thali (x2) - ₹298") || !strings.HasSuffix(lines[1], "Normal Thali (x1) - ₹129") {
		t.Fatalf("log lines=%q", lines)
	}
}

func TestLogSelection_EmptyList(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	w := postSelection(newRouter(&sink), `{"selectedItems":[]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"message":"Items logged successfully!","items":[]}` {
		t.Fatalf("body=%s", w.Body.String())
	}
	if sink.Len() != 0 {
		t.Fatalf("unexpected log output %q", sink.String())
	}
}

func TestLogSelection_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, body, field string
	}{
		{"missing list", `{}`, "selectedItems"},
		{"missing price", `{"selectedItems":[{"id":"1","name":"A","quantity":1}]}`, "selectedItems[0].price"},
		{"missing name", `{"selectedItems":[{"id":"1","price":1,"quantity":1}]}`, "selectedItems[0].name"},
		{"price as text", `{"selectedItems":[{"id":"1","name":"A","price":"free","quantity":1}]}`, "selectedItems.price"},
		{"quantity fractional", `{"selectedItems":[{"id":"1","name":"A","price":1,"quantity":1.5}]}`, "selectedItems.quantity"},
		{"empty body", ``, "body"},
		{"price exponent too large", `{"selectedItems":[{"id":"1","name":"A","price":9e99999999,"quantity":1}]}`, "selectedItems.price"},
	}
	for _, tc := range cases {
		var sink bytes.Buffer
		w := postSelection(newRouter(&sink), tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d body=%s (esperaba 400)", tc.name, w.Code, w.Body.String())
		}
		var got httpx.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("%s: json inválido: %v", tc.name, err)
		}
		if len(got.Details) == 0 || got.Details[0].Field != tc.field {
			t.Fatalf("%s: details=%+v want field %q", tc.name, got.Details, tc.field)
		}
		if sink.Len() != 0 {
			t.Fatalf("%s: logged on invalid body: %q", tc.name, sink.String())
		}
	}
}

// ===== OPTIONS /log_selected_items/ =====
func TestPreflight_IgnoresBody(t *testing.T) {
	t.Parallel()

	r := newRouter(io.Discard)
	for _, body := range []string{"", "garbage", `{"selectedItems":"nope"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/log_selected_items/", strings.NewReader(body))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"message":"CORS preflight successful"}` {
			t.Fatalf("body=%s", w.Body.String())
		}
	}
}

// Browser preflights (Origin + Access-Control-Request-Method) are answered by
// the CORS middleware of the full engine.
func TestPreflight_BrowserThroughEngine(t *testing.T) {
	t.Parallel()

	cfg := config.Config{CORS: config.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}}
	r, err := server.NewEngine(cfg, "")
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	registerRoutes(r, selection.NewReporter(io.Discard, "₹"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/log_selected_items/", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q", got)
	}

	// an OPTIONS with Origin but no requested method gets the acknowledgment
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/log_selected_items/", strings.NewReader("ignored"))
	req.Header.Set("Origin", "http://localhost:19006")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"CORS preflight successful"}` {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	// the actual request from the same origin then succeeds
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/log_selected_items/", strings.NewReader(`{"selectedItems":[]}`))
	req.Header.Set("Origin", "http://localhost:19006")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
