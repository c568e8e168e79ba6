package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"evoview/internal/app/ports"
)

func newSimulationServer(t *testing.T, world string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	steps := &atomic.Int32{}
	mux := http.NewServeMux()
	mux.HandleFunc("/step", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		steps.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/train", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "min=1.000, max=9.000, avg=4.500")
	})
	mux.HandleFunc("/world", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, world)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, steps
}

func TestProvider_RoundTrip(t *testing.T) {
	srv, steps := newSimulationServer(t, `{"foods":[{"x":0.5,"y":0.5}],"animals":[{"x":0.25,"y":0.75,"rotation":3.14}]}`)
	p, err := NewProvider(Config{BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	ctx := context.Background()

	if err := p.Step(ctx); err != nil {
		t.Fatalf("Step error: %v", err)
	}
	if steps.Load() != 1 {
		t.Fatalf("expected one step on server, got %d", steps.Load())
	}

	summary, err := p.Train(ctx)
	if err != nil {
		t.Fatalf("Train error: %v", err)
	}
	if summary != "min=1.000, max=9.000, avg=4.500" {
		t.Fatalf("unexpected summary %q", summary)
	}

	s, err := p.World(ctx)
	if err != nil {
		t.Fatalf("World error: %v", err)
	}
	if len(s.Foods) != 1 || s.Foods[0].X != 0.5 {
		t.Fatalf("unexpected foods: %+v", s.Foods)
	}
	if len(s.Animals) != 1 || s.Animals[0].Rotation != 3.14 {
		t.Fatalf("unexpected animals: %+v", s.Animals)
	}
}

func TestProvider_RejectsMalformedWorld(t *testing.T) {
	srv, _ := newSimulationServer(t, `{"foods":[{"x":2,"y":0.5}]}`)
	p, err := NewProvider(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	if _, err := p.World(context.Background()); !errors.Is(err, ports.ErrSimulation) {
		t.Fatalf("expected ErrSimulation, got %v", err)
	}

	srv, _ = newSimulationServer(t, `not json`)
	p, _ = NewProvider(Config{BaseURL: srv.URL})
	if _, err := p.World(context.Background()); !errors.Is(err, ports.ErrSimulation) {
		t.Fatalf("expected ErrSimulation for bad json, got %v", err)
	}
}

func TestProvider_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "generation crashed", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	p, err := NewProvider(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	_, err = p.Train(context.Background())
	if !errors.Is(err, ports.ErrSimulation) {
		t.Fatalf("expected ErrSimulation, got %v", err)
	}
}

func TestNewProvider_RequiresBaseURL(t *testing.T) {
	if _, err := NewProvider(Config{BaseURL: "  "}); !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}
