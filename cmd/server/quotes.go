package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kaniou/kaniou.be/internal/calculator"
)

type createQuoteRequest struct {
	CustomerName string   `json:"customerName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	ProductID    string   `json:"productId"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	Features     []string `json:"features"`
	Notes        string   `json:"notes"`
}

type createQuoteResponse struct {
	Reference string `json:"reference"`
	Price     int    `json:"price"`
}

type quoteListItem struct {
	Reference    string `json:"reference"`
	CreatedAt    string `json:"createdAt"`
	CustomerName string `json:"customerName"`
	ProductID    string `json:"productId"`
	Price        int    `json:"price"`
}

type quoteListResponse struct {
	Query string          `json:"query,omitempty"`
	Items []quoteListItem `json:"items"`
}

type quoteDetail struct {
	quoteListItem
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Features []string `json:"features"`
	Notes    string   `json:"notes,omitempty"`
}

func (s *server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "ongeldige aanvraag")
		return
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Email = strings.TrimSpace(req.Email)
	if req.CustomerName == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "naam en e-mailadres zijn verplicht")
		return
	}

	cfg, _ := s.lookupProduct(req.ProductID)

	price, err := s.priceWithShell(cfg, req.Width, req.Height, req.Features)
	if err != nil {
		if errors.Is(err, calculator.ErrMissingDimensions) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "prijsberekening mislukt")
		return
	}

	featuresJSON, err := json.Marshal(req.Features)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "offerte opslaan mislukt")
		return
	}

	reference := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO quotes (reference, customer_name, email, phone, product_id, width, height, features_json, price, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, reference, req.CustomerName, req.Email, req.Phone, cfg.ProductID, req.Width, req.Height, string(featuresJSON), price, req.Notes)
	if err != nil {
		log.Printf("insert quote: %v", err)
		writeError(w, http.StatusInternalServerError, "offerte opslaan mislukt")
		return
	}

	writeJSON(w, http.StatusCreated, createQuoteResponse{Reference: reference, Price: price})
}

func (s *server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.listQuotes(query)
	if err != nil {
		log.Printf("list quotes: %v", err)
		writeError(w, http.StatusInternalServerError, "offertes laden mislukt")
		return
	}

	writeJSON(w, http.StatusOK, quoteListResponse{Query: query, Items: quotes})
}

func (s *server) handleQuoteDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.getQuoteDetail(chi.URLParam(r, "reference"))
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "offerte niet gevonden")
		return
	}
	if err != nil {
		log.Printf("quote detail: %v", err)
		writeError(w, http.StatusInternalServerError, "offerte laden mislukt")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT reference, created_at, customer_name, product_id, price
		FROM quotes
		WHERE (? = '' OR customer_name LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		if err := rows.Scan(&item.Reference, &item.CreatedAt, &item.CustomerName, &item.ProductID, &item.Price); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return quotes, nil
}

func (s *server) getQuoteDetail(reference string) (quoteDetail, error) {
	var detail quoteDetail
	var featuresJSON string
	err := s.db.QueryRow(`
		SELECT reference, created_at, customer_name, email, COALESCE(phone, ''), product_id, width, height, features_json, price, COALESCE(notes, '')
		FROM quotes
		WHERE reference = ?
	`, reference).Scan(
		&detail.Reference,
		&detail.CreatedAt,
		&detail.CustomerName,
		&detail.Email,
		&detail.Phone,
		&detail.ProductID,
		&detail.Width,
		&detail.Height,
		&featuresJSON,
		&detail.Price,
		&detail.Notes,
	)
	if err != nil {
		return quoteDetail{}, err
	}

	if err := json.Unmarshal([]byte(featuresJSON), &detail.Features); err != nil {
		return quoteDetail{}, fmt.Errorf("decode stored features: %w", err)
	}
	if detail.Features == nil {
		detail.Features = []string{}
	}

	return detail, nil
}
