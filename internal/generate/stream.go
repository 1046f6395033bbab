package generate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"quizkit/internal/quiz"
)

// Stream delivers successive partial snapshots of the question array.
type Stream interface {
	// Recv returns the next snapshot or io.EOF when the stream is done.
	Recv() ([]quiz.Draft, error)
	// Close releases the underlying response body.
	Close() error
}

// quizStream reads SSE lines lazily from the response body. Each data
// payload carries the latest partial array; elements replace their index
// wholesale rather than merging field by field.
type quizStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	done    bool
}

// newQuizStream wraps a response body in a lazy SSE stream.
func newQuizStream(body io.ReadCloser) *quizStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &quizStream{body: body, scanner: scanner}
}

// Recv scans forward to the next data payload.
func (s *quizStream) Recv() ([]quiz.Draft, error) {
	if s.done {
		return nil, io.EOF
	}
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			s.done = true
			return nil, io.EOF
		}
		snapshot, err := parseSnapshot([]byte(data))
		if err != nil {
			s.done = true
			return nil, err
		}
		return snapshot, nil
	}
	s.done = true
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close closes the underlying body.
func (s *quizStream) Close() error {
	return s.body.Close()
}

// parseSnapshot decodes one partial array payload against the question
// schema shape.
func parseSnapshot(data []byte) ([]quiz.Draft, error) {
	var snapshot []quiz.Draft
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse stream chunk: %w", err)
	}
	if len(snapshot) > quiz.QuestionCount {
		return nil, fmt.Errorf("stream emitted %d questions, want at most %d", len(snapshot), quiz.QuestionCount)
	}
	return snapshot, nil
}

// staticStream exposes fixed snapshots as a Stream.
type staticStream struct {
	snapshots [][]quiz.Draft
	index     int
}

// NewStaticStream builds a stream over pre-computed snapshots.
func NewStaticStream(snapshots [][]quiz.Draft) Stream {
	return &staticStream{snapshots: snapshots}
}

// Recv returns the next snapshot or io.EOF when complete.
func (s *staticStream) Recv() ([]quiz.Draft, error) {
	if s.index >= len(s.snapshots) {
		return nil, io.EOF
	}
	snapshot := s.snapshots[s.index]
	s.index++
	return snapshot, nil
}

// Close is a no-op for static streams.
func (s *staticStream) Close() error {
	return nil
}
