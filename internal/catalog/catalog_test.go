package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackwell-systems/storefront/internal/catalog"
)

var sampleJSON = []byte(`[
  {
    "id": 1,
    "title": "Fjallraven Foldsack No. 1 Backpack",
    "price": 109.95,
    "description": "Your perfect pack for everyday use and walks in the forest.",
    "category": "men's clothing",
    "image": "https://example.test/img/1.jpg",
    "rating": {"rate": 3.9, "count": 120}
  },
  {
    "id": 2,
    "title": "Mens Casual Premium Slim Fit T-Shirts",
    "price": 22.3,
    "description": "Slim-fitting style, contrast raglan long sleeve.",
    "category": "men's clothing",
    "image": "https://example.test/img/2.jpg",
    "rating": {"rate": 4.1, "count": 259}
  }
]`)

// --- Parse ---

func TestParse_ValidJSON(t *testing.T) {
	products, err := catalog.Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != 1 {
		t.Errorf("products[0].ID = %d, want 1", products[0].ID)
	}
	if products[1].Rating.Count != 259 {
		t.Errorf("products[1].Rating.Count = %d, want 259", products[1].Rating.Count)
	}
	if products[0].Category != "men's clothing" {
		t.Errorf("products[0].Category = %q", products[0].Category)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range [][]byte{nil, []byte(""), []byte("[]"), []byte("null")} {
		products, err := catalog.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if products == nil {
			t.Fatalf("Parse(%q) returned nil slice", in)
		}
		if len(products) != 0 {
			t.Errorf("Parse(%q) returned %d products, want 0", in, len(products))
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := catalog.Parse([]byte(`{"not": "an array"}`)); err == nil {
		t.Fatal("expected error for non-array JSON")
	}
}

// --- Client.Fetch ---

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(sampleJSON)
	}))
	defer srv.Close()

	products, err := catalog.New(srv.URL, "").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := catalog.New(srv.URL, "").Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !errors.Is(err, catalog.ErrStatus) {
		t.Errorf("error %v does not wrap ErrStatus", err)
	}
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	if _, err := catalog.New(srv.URL, "").Fetch(context.Background()); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestFetch_TransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if _, err := catalog.New(srv.URL, "").Fetch(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
}

// --- render helpers ---

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{109.95, "$109.95"},
		{22.3, "$22.30"},
		{0, "$0.00"},
	}
	for _, tc := range cases {
		if got := catalog.FormatPrice(tc.in); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRating(t *testing.T) {
	got := catalog.FormatRating(catalog.Rating{Rate: 3.9, Count: 120})
	if got != "★ 3.9 (120)" {
		t.Errorf("FormatRating = %q", got)
	}
}

func TestClientURL_Normalization(t *testing.T) {
	c := catalog.New("https://api.example.test/", "products")
	if got := c.URL(); got != "https://api.example.test/products" {
		t.Errorf("URL() = %q", got)
	}
}
