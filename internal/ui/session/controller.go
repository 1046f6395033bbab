package session

import (
	"context"
	"io"

	"github.com/google/uuid"

	"quizkit/internal/generate"
	"quizkit/internal/quiz"
	"quizkit/internal/upload"
)

// Controller runs the asynchronous submission pipeline and reports back
// through the event channel. The session state itself is only ever
// touched by the single-threaded consumer of that channel.
type Controller struct {
	client *generate.Client
	events chan Event
}

// NewController wires a controller to a generator client.
func NewController(client *generate.Client) *Controller {
	return &Controller{
		client: client,
		events: make(chan Event, 64),
	}
}

// Events exposes the event stream for the UI loop.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Submit starts the pipeline for the staged files and returns the new
// submission ID. Encoding is awaited as a whole, then the quiz stream
// and the title request run concurrently with no ordering between them.
// There is no cancellation: a cleared session simply ignores late events
// by submission ID.
func (c *Controller) Submit(staged []upload.Candidate) string {
	id := uuid.NewString()
	candidates := make([]upload.Candidate, len(staged))
	copy(candidates, staged)

	go c.runPipeline(id, candidates)
	go c.runTitle(id, candidates[0].Name)

	return id
}

// runPipeline encodes, submits, and consumes the quiz stream.
func (c *Controller) runPipeline(id string, candidates []upload.Candidate) {
	ctx := context.Background()
	files, err := upload.EncodeAll(ctx, candidates)
	if err != nil {
		c.events <- Event{Kind: EventEncodeFailed, SubmissionID: id, Err: err.Error()}
		return
	}
	stream, err := c.client.StreamQuiz(ctx, generate.Payload{Files: files})
	if err != nil {
		c.events <- Event{Kind: EventStreamFailed, SubmissionID: id, Err: err.Error()}
		return
	}
	defer stream.Close()
	c.events <- Event{Kind: EventEncoded, SubmissionID: id}

	c.consume(id, stream)
}

// consume forwards stream increments until a terminal signal.
func (c *Controller) consume(id string, stream generate.Stream) {
	var final []quiz.Draft
	for {
		snapshot, err := stream.Recv()
		if err == io.EOF {
			c.events <- Event{Kind: EventStreamDone, SubmissionID: id, Drafts: final}
			return
		}
		if err != nil {
			c.events <- Event{Kind: EventStreamFailed, SubmissionID: id, Err: err.Error()}
			return
		}
		final = snapshot
		c.events <- Event{Kind: EventSnapshot, SubmissionID: id, Drafts: snapshot}
	}
}

// runTitle fires the independent title request. Its result is merged by
// the reducer whenever it arrives, before or after stream completion.
func (c *Controller) runTitle(id string, fileName string) {
	title, err := c.client.Title(context.Background(), fileName)
	if err != nil {
		// The title is cosmetic; the session falls back to the file name.
		return
	}
	c.events <- Event{Kind: EventTitle, SubmissionID: id, Title: title}
}
