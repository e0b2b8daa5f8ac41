package flight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestSearchLeg_DecodesOptions(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("origin"); got != "DEL" {
			t.Errorf("origin = %q, want DEL", got)
		}
		if got := r.URL.Query().Get("destination"); got != "IST" {
			t.Errorf("destination = %q, want IST", got)
		}
		if got := r.URL.Query().Get("depart"); got != "2026-10-02" {
			t.Errorf("depart = %q, want 2026-10-02", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"options":[{"carrier":"Turkish Airlines","hops":["DEL","IST"],"price":412.5,"currency":"USD","stops":0}]}`))
	})
	defer srv.Close()

	options, err := c.SearchLeg(context.Background(), "DEL", "IST", DateWindow{Depart: "2026-10-02"})
	if err != nil {
		t.Fatalf("SearchLeg() error = %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("len(options) = %d, want 1", len(options))
	}
	if options[0].Carrier != "Turkish Airlines" || options[0].Price != 412.5 {
		t.Errorf("option = %+v, want Turkish Airlines at 412.5", options[0])
	}
}

func TestSearchLeg_ServerErrorIsTransient(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := c.SearchLeg(context.Background(), "DEL", "IST", DateWindow{Depart: "2026-10-02"})
	if !IsTransient(err) {
		t.Errorf("err = %v, want transient for 502", err)
	}
}

func TestSearchLeg_ThrottleIsTransient(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.SearchLeg(context.Background(), "DEL", "IST", DateWindow{Depart: "2026-10-02"})
	if !IsTransient(err) {
		t.Errorf("err = %v, want transient for 429", err)
	}
}

func TestSearchLeg_BadRequestIsPermanent(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown airport", http.StatusBadRequest)
	})
	defer srv.Close()

	_, err := c.SearchLeg(context.Background(), "DEL", "XXX", DateWindow{Depart: "2026-10-02"})
	if !IsPermanent(err) {
		t.Errorf("err = %v, want permanent for 400", err)
	}
}

func TestSearchLeg_ValidatesBeforeCalling(t *testing.T) {
	called := false
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer srv.Close()

	cases := []struct {
		name         string
		origin, dest string
		window       DateWindow
	}{
		{"missing origin", "", "IST", DateWindow{Depart: "2026-10-02"}},
		{"missing dest", "DEL", "", DateWindow{Depart: "2026-10-02"}},
		{"same endpoints", "DEL", "DEL", DateWindow{Depart: "2026-10-02"}},
		{"missing date", "DEL", "IST", DateWindow{}},
	}
	for _, tc := range cases {
		_, err := c.SearchLeg(context.Background(), tc.origin, tc.dest, tc.window)
		if !IsPermanent(err) {
			t.Errorf("%s: err = %v, want permanent", tc.name, err)
		}
	}
	if called {
		t.Error("provider was called for an invalid query")
	}
}

func TestSearchLeg_NetworkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := NewClient(srv.URL, time.Second)

	_, err := c.SearchLeg(context.Background(), "DEL", "IST", DateWindow{Depart: "2026-10-02"})
	if !IsTransient(err) {
		t.Errorf("err = %v, want transient for refused connection", err)
	}
}
