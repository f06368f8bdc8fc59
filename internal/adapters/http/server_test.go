package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/startup-scorer/internal/adapters/http"
	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/report"
	"github.com/jsamuelsen11/startup-scorer/internal/domain/scoring"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/config"
	"github.com/jsamuelsen11/startup-scorer/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), nil)
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 9090}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

// slowBatchServer serves the real router with a ScoringService whose
// ScoreBatch signals started and then blocks until release is closed.
func slowBatchServer(t *testing.T, cfg config.ServerConfig) (s *adapthttp.Server, url string, started, release chan struct{}, served chan error) {
	t.Helper()

	started = make(chan struct{})
	release = make(chan struct{})

	svc := mocks.NewMockScoringService(t)
	svc.EXPECT().ScoreBatch(mock.Anything, []string{"stripe.com"}).
		RunAndReturn(func(context.Context, []string) (*report.Report, error) {
			close(started)
			<-release
			rep := report.New(1, time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC))
			rep.AddScored("stripe.com", scoring.Result{Domain: "stripe.com", Score: 82.5, Tier: scoring.TierHigh})
			return rep, nil
		}).Maybe()

	router := adapthttp.NewRouter(
		handlers.NewScoreHandler(svc, 10),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
	)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s = adapthttp.NewServer(cfg, router, discardLogger())
	served = make(chan error, 1)
	go func() { served <- s.Serve(ln) }()

	return s, "http://" + ln.Addr().String(), started, release, served
}

func postBatch(url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		url+"/api/v1/reports", strings.NewReader(`{"domains":["stripe.com"]}`))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

func TestServer_ShutdownWaitsForInFlightBatch(t *testing.T) {
	t.Parallel()

	s, url, started, release, served := slowBatchServer(t,
		config.ServerConfig{Host: "127.0.0.1", ShutdownTimeout: 5 * time.Second})

	type result struct {
		resp *http.Response
		err  error
	}
	respCh := make(chan result, 1)
	go func() {
		resp, err := postBatch(url)
		respCh <- result{resp, err}
	}()

	<-started

	shutdownErr := make(chan error, 1)
	go func() { shutdownErr <- s.Shutdown(context.Background()) }()

	select {
	case err := <-shutdownErr:
		t.Fatalf("Shutdown() returned %v while a batch was still running", err)
	case <-time.After(100 * time.Millisecond):
	}
	close(release)

	if err := <-shutdownErr; err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-served; err != nil {
		t.Fatalf("Serve() error after shutdown: %v", err)
	}

	res := <-respCh
	if res.err != nil {
		t.Fatalf("batch request error: %v", res.err)
	}
	defer func() { _ = res.resp.Body.Close() }()

	if res.resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.resp.StatusCode, http.StatusOK)
	}
	var body struct {
		Rows []struct {
			Domain string `json:"domain"`
			Tier   string `json:"tier"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(res.resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if len(body.Rows) != 1 || body.Rows[0].Domain != "stripe.com" || body.Rows[0].Tier != "High" {
		t.Errorf("rows = %+v, want one High row for stripe.com", body.Rows)
	}
}

func TestServer_ShutdownGivesUpAfterConfiguredTimeout(t *testing.T) {
	t.Parallel()

	s, url, started, release, served := slowBatchServer(t,
		config.ServerConfig{Host: "127.0.0.1", ShutdownTimeout: 50 * time.Millisecond})

	respCh := make(chan struct{})
	go func() {
		defer close(respCh)
		if resp, err := postBatch(url); err == nil {
			_ = resp.Body.Close()
		}
	}()
	t.Cleanup(func() {
		close(release)
		<-respCh
	})

	<-started

	// No deadline on ctx: the configured shutdown timeout applies.
	err := s.Shutdown(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Shutdown() error = %v, want context.DeadlineExceeded", err)
	}
	if err := <-served; err != nil {
		t.Fatalf("Serve() error after shutdown: %v", err)
	}
}
