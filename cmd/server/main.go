package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaniou/kaniou.be/internal/config"
	"github.com/kaniou/kaniou.be/internal/db"
	"github.com/kaniou/kaniou.be/internal/migrations"
	"github.com/kaniou/kaniou.be/internal/seed"
)

type server struct {
	auth *authService
	db   *sql.DB
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatalf("failed to run startup seed: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seed inserted %d rows", stats.Inserts)
	}

	auth := newAuthService(database, cfg.SessionSecret)
	srv := &server{auth: auth, db: database}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	// Public storefront API.
	r.Get("/api/products", s.handleListProducts)
	r.Get("/api/products/{id}", s.handleGetProduct)
	r.Post("/api/products/{id}/price", s.handlePrice)
	r.Post("/api/quotes", s.handleCreateQuote)
	r.Get("/api/track/{reference}", s.handleTrackOrder)
	r.Post("/api/login", s.handleLogin)
	r.Post("/api/logout", s.handleLogout)

	// Admin panel API.
	r.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Get("/api/quotes", s.handleListQuotes)
		r.Get("/api/quotes/{reference}", s.handleQuoteDetail)
		r.Get("/api/admin/orders", s.handleListOrders)
		r.Post("/api/admin/orders", s.handleCreateOrder)
		r.Post("/api/admin/orders/{reference}/status", s.handleAdvanceOrder)
	})

	return r
}

func (s *server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAuthenticated(r, s.auth) {
			writeError(w, http.StatusUnauthorized, "aanmelden vereist")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "ongeldige aanvraag")
		return
	}

	valid, err := s.auth.validateCredentials(req.Email, req.Password)
	if err != nil {
		log.Printf("validate credentials: %v", err)
		writeError(w, http.StatusInternalServerError, "aanmelden mislukt")
		return
	}
	if !valid {
		writeError(w, http.StatusUnauthorized, "ongeldige inloggegevens")
		return
	}

	s.auth.setSessionCookie(w, req.Email)
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
