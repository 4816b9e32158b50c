package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaniou/kaniou.be/internal/calculator"
	"github.com/kaniou/kaniou.be/internal/catalog"
)

type productListResponse struct {
	Items []catalog.ProductConfig `json:"items"`
}

type productResponse struct {
	catalog.ProductConfig
	// Fallback marks responses where an unknown product id degraded to the
	// default product, so the UI can tell a genuine match from the fallback.
	Fallback bool `json:"fallback,omitempty"`
}

type priceRequest struct {
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Features []string `json:"features"`
}

type priceResponse struct {
	ProductID string `json:"productId"`
	Price     int    `json:"price"`
}

func (s *server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, productListResponse{Items: catalog.All()})
}

func (s *server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	cfg, matched := s.lookupProduct(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, productResponse{ProductConfig: cfg, Fallback: !matched})
}

func (s *server) handlePrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "ongeldige aanvraag")
		return
	}

	cfg, _ := s.lookupProduct(chi.URLParam(r, "id"))

	price, err := s.priceWithShell(cfg, req.Width, req.Height, req.Features)
	if err != nil {
		if errors.Is(err, calculator.ErrMissingDimensions) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "prijsberekening mislukt")
		return
	}

	writeJSON(w, http.StatusOK, priceResponse{ProductID: cfg.ProductID, Price: price})
}

// lookupProduct resolves a product id via the registry, logging the fallback
// for unknown ids so upstream routing bugs stay visible.
func (s *server) lookupProduct(productID string) (catalog.ProductConfig, bool) {
	cfg, matched := catalog.Lookup(productID)
	if !matched {
		log.Printf("unknown product id %q, serving default %q", productID, cfg.ProductID)
	}
	return cfg, matched
}

// priceWithShell runs a request through a fresh calculator session. Feature
// ids are deduplicated first: the request carries a selection set, while
// ToggleFeature flips membership.
func (s *server) priceWithShell(cfg catalog.ProductConfig, width, height float64, features []string) (int, error) {
	calc := calculator.New(cfg)
	calc.SetDimension(calculator.Width, width)
	calc.SetDimension(calculator.Height, height)

	seen := make(map[string]bool, len(features))
	for _, id := range features {
		if seen[id] {
			continue
		}
		seen[id] = true
		calc.ToggleFeature(id)
	}

	if unknown := unknownFeatureIDs(cfg, features); len(unknown) > 0 {
		log.Printf("product %q: ignoring unknown feature ids %v", cfg.ProductID, unknown)
	}

	return calc.Calculate()
}

func unknownFeatureIDs(cfg catalog.ProductConfig, ids []string) []string {
	var unknown []string
	for _, id := range ids {
		if _, ok := cfg.Feature(id); !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
