package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// GeneratorOptions configures the fake quiz-generation service.
type GeneratorOptions struct {
	// Snapshots are emitted in order as SSE data payloads, each the raw
	// JSON for a partial question array.
	Snapshots []string
	// AbortAfter, when > 0, kills the connection after that many
	// snapshots instead of sending the terminal marker.
	AbortAfter int
	// Title is returned by the title endpoint.
	Title string
	// TitleDelay postpones the title response to exercise late arrival.
	TitleDelay time.Duration
	// QuizStatus, when non-zero, makes the quiz endpoint fail outright.
	QuizStatus int
}

// StartGenerator runs an in-process fake of the remote generator and
// returns its base URL. The server stops with the test.
func StartGenerator(t testing.TB, opts GeneratorOptions) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/quiz", func(w http.ResponseWriter, r *http.Request) {
		if opts.QuizStatus != 0 {
			http.Error(w, "generation failed", opts.QuizStatus)
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			t.Errorf("response writer is not flushable")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for i, snapshot := range opts.Snapshots {
			if opts.AbortAfter > 0 && i >= opts.AbortAfter {
				panic(http.ErrAbortHandler)
			}
			// SSE payloads must be a single line; compact the JSON so
			// indented fixture snapshots stay one data: line.
			var compact bytes.Buffer
			if err := json.Compact(&compact, []byte(snapshot)); err != nil {
				t.Errorf("snapshot %d is not valid JSON: %v", i, err)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", compact.String())
			flusher.Flush()
		}
		if opts.AbortAfter > 0 {
			panic(http.ErrAbortHandler)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	})
	mux.HandleFunc("/v1/title", func(w http.ResponseWriter, r *http.Request) {
		if opts.TitleDelay > 0 {
			time.Sleep(opts.TitleDelay)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"title": opts.Title})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}
