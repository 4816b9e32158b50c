package main

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestServer(t *testing.T) *server {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE quotes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			product_id TEXT NOT NULL,
			width NUMERIC NOT NULL,
			height NUMERIC NOT NULL,
			features_json TEXT NOT NULL DEFAULT '[]',
			price INTEGER NOT NULL,
			notes TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			product_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'received',
			notes TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}

	return &server{
		auth: newAuthService(db, "test-secret"),
		db:   db,
	}
}

// doRequest runs a request through the full router. When admin is true the
// request carries a valid session cookie.
func doRequest(t *testing.T, srv *server, req *http.Request, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	if admin {
		req.AddCookie(&http.Cookie{
			Name:  sessionCookieName,
			Value: srv.auth.createSessionValue("admin@kaniou.be"),
		})
	}

	rr := httptest.NewRecorder()
	srv.routes().ServeHTTP(rr, req)
	return rr
}
