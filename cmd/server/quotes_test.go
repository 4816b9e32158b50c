package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleCreateQuote_PricesAndStoresSnapshot(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"customerName": "Jan Peeters",
		"email": "jan@example.be",
		"phone": "+32 470 00 00 00",
		"productId": "rolgordijnen",
		"width": 100,
		"height": 200,
		"features": ["verduisterend", "cassette"],
		"notes": "Graag voor eind de maand"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	rr := doRequest(t, srv, req, false)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp createQuoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Reference == "" {
		t.Fatalf("expected a quote reference")
	}
	// 2m² * 40 + 15*2*0.8 + 35 = 139.
	if resp.Price != 139 {
		t.Fatalf("price = %d, want 139", resp.Price)
	}

	detail, err := srv.getQuoteDetail(resp.Reference)
	if err != nil {
		t.Fatalf("getQuoteDetail: %v", err)
	}
	if detail.CustomerName != "Jan Peeters" || detail.Price != 139 {
		t.Fatalf("unexpected stored quote: %+v", detail)
	}
	if len(detail.Features) != 2 {
		t.Fatalf("expected 2 stored features, got %+v", detail.Features)
	}
}

func TestHandleCreateQuote_RequiresContactDetails(t *testing.T) {
	srv := newTestServer(t)

	body := `{"customerName": "", "email": "", "productId": "rolgordijnen", "width": 100, "height": 200}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	rr := doRequest(t, srv, req, false)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleCreateQuote_MissingDimensionsIsBadRequest(t *testing.T) {
	srv := newTestServer(t)

	body := `{"customerName": "Jan", "email": "jan@example.be", "productId": "rolgordijnen", "width": 0, "height": 200}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	rr := doRequest(t, srv, req, false)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestListQuotes_OrdersByDateDescAndFilters(t *testing.T) {
	srv := newTestServer(t)

	seedQuote(t, srv, "2024-01-01 10:00:00", "Q-1", "An Janssens", "gordijn woonkamer", 100)
	seedQuote(t, srv, "2024-01-03 12:00:00", "Q-3", "Piet Maes", "rolgordijn keuken", 300)
	seedQuote(t, srv, "2024-01-02 11:00:00", "Q-2", "An Claes", "slaapkamer", 200)

	quotes, err := srv.listQuotes("")
	if err != nil {
		t.Fatalf("listQuotes returned error: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}
	if quotes[0].Reference != "Q-3" || quotes[1].Reference != "Q-2" || quotes[2].Reference != "Q-1" {
		t.Fatalf("quotes are not sorted desc by created_at: %+v", quotes)
	}
	if quotes[0].Price != 300 {
		t.Fatalf("unexpected price on newest quote: %+v", quotes[0])
	}

	byName, err := srv.listQuotes("An ")
	if err != nil {
		t.Fatalf("listQuotes name filter returned error: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 quotes filtered by name, got %+v", byName)
	}

	byNotes, err := srv.listQuotes("keuken")
	if err != nil {
		t.Fatalf("listQuotes notes filter returned error: %v", err)
	}
	if len(byNotes) != 1 || byNotes[0].Reference != "Q-3" {
		t.Fatalf("expected Q-3 filtered by notes, got %+v", byNotes)
	}
}

func TestQuoteEndpointsRequireAdmin(t *testing.T) {
	srv := newTestServer(t)
	seedQuote(t, srv, "2024-01-01 10:00:00", "Q-1", "An Janssens", "", 100)

	rr := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/quotes", nil), false)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without session, got %d", rr.Code)
	}

	rr = doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/quotes", nil), true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 with session, got %d", rr.Code)
	}

	rr = doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/quotes/Q-1", nil), true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 for detail, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/quotes/onbekend", nil), true)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown reference, got %d", rr.Code)
	}
}

func seedQuote(t *testing.T, srv *server, createdAt, reference, customer, notes string, price int) {
	t.Helper()

	_, err := srv.db.Exec(`
		INSERT INTO quotes (reference, customer_name, email, product_id, width, height, features_json, price, notes, created_at)
		VALUES (?, ?, 'test@example.be', 'overgordijnen', 150, 260, '[]', ?, ?, ?)
	`, reference, customer, price, notes, createdAt)
	if err != nil {
		t.Fatalf("failed to seed quote: %v", err)
	}
}
