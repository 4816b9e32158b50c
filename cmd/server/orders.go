package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kaniou/kaniou.be/internal/catalog"
	"github.com/kaniou/kaniou.be/internal/orders"
)

type createOrderRequest struct {
	CustomerName string `json:"customerName"`
	ProductID    string `json:"productId"`
	Notes        string `json:"notes"`
}

type orderResponse struct {
	Reference    string `json:"reference"`
	CustomerName string `json:"customerName,omitempty"`
	ProductID    string `json:"productId"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}

type orderListResponse struct {
	Items []orderResponse `json:"items"`
}

type advanceOrderRequest struct {
	Status string `json:"status"`
}

// trackResponse is the public view of an order: no customer details.
type trackResponse struct {
	Reference   string `json:"reference"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updatedAt"`
}

func (s *server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "ongeldige aanvraag")
		return
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		writeError(w, http.StatusBadRequest, "klantnaam is verplicht")
		return
	}
	if _, matched := catalog.Lookup(req.ProductID); !matched {
		writeError(w, http.StatusBadRequest, "onbekend product")
		return
	}

	reference := newOrderReference()
	_, err := s.db.Exec(`
		INSERT INTO orders (reference, customer_name, product_id, status, notes)
		VALUES (?, ?, ?, ?, ?)
	`, reference, req.CustomerName, req.ProductID, string(orders.StatusReceived), req.Notes)
	if err != nil {
		log.Printf("insert order: %v", err)
		writeError(w, http.StatusInternalServerError, "order aanmaken mislukt")
		return
	}

	writeJSON(w, http.StatusCreated, orderResponse{
		Reference: reference,
		ProductID: req.ProductID,
		Status:    string(orders.StatusReceived),
	})
}

func (s *server) handleAdvanceOrder(w http.ResponseWriter, r *http.Request) {
	var req advanceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "ongeldige aanvraag")
		return
	}

	next := orders.Status(req.Status)
	if !next.Valid() {
		writeError(w, http.StatusBadRequest, "onbekende status")
		return
	}

	reference := chi.URLParam(r, "reference")
	var current orders.Status
	err := s.db.QueryRow(`SELECT status FROM orders WHERE reference = ?`, reference).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "order niet gevonden")
		return
	}
	if err != nil {
		log.Printf("query order status: %v", err)
		writeError(w, http.StatusInternalServerError, "order laden mislukt")
		return
	}

	if !current.CanAdvanceTo(next) {
		writeError(w, http.StatusConflict, fmt.Sprintf("status kan niet van %s naar %s", current, next))
		return
	}

	if _, err := s.db.Exec(`
		UPDATE orders
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE reference = ?
	`, string(next), reference); err != nil {
		log.Printf("update order status: %v", err)
		writeError(w, http.StatusInternalServerError, "status bijwerken mislukt")
		return
	}

	writeJSON(w, http.StatusOK, orderResponse{Reference: reference, Status: string(next)})
}

func (s *server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.Query(`
		SELECT reference, customer_name, product_id, status, COALESCE(notes, ''), created_at, updated_at
		FROM orders
		ORDER BY datetime(created_at) DESC, id DESC
	`)
	if err != nil {
		log.Printf("query orders: %v", err)
		writeError(w, http.StatusInternalServerError, "orders laden mislukt")
		return
	}
	defer rows.Close()

	items := make([]orderResponse, 0)
	for rows.Next() {
		var o orderResponse
		if err := rows.Scan(&o.Reference, &o.CustomerName, &o.ProductID, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			log.Printf("scan order: %v", err)
			writeError(w, http.StatusInternalServerError, "orders laden mislukt")
			return
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		log.Printf("iterate orders: %v", err)
		writeError(w, http.StatusInternalServerError, "orders laden mislukt")
		return
	}

	writeJSON(w, http.StatusOK, orderListResponse{Items: items})
}

func (s *server) handleTrackOrder(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	var resp trackResponse
	err := s.db.QueryRow(`
		SELECT reference, product_id, status, updated_at
		FROM orders
		WHERE reference = ?
	`, reference).Scan(&resp.Reference, &resp.ProductID, &resp.Status, &resp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "order niet gevonden")
		return
	}
	if err != nil {
		log.Printf("query order: %v", err)
		writeError(w, http.StatusInternalServerError, "order laden mislukt")
		return
	}

	cfg, _ := s.lookupProduct(resp.ProductID)
	resp.ProductName = cfg.ProductName

	writeJSON(w, http.StatusOK, resp)
}

// newOrderReference builds a short customer-facing reference like
// KAN-1A2B3C4D from a random UUID.
func newOrderReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "KAN-" + id[:8]
}
