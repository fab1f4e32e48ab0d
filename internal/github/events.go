package github

import (
	"encoding/json"
	"fmt"
)

// Event types handled by the extractor
const (
	PushEventType         = "PushEvent"
	PullRequestEventType  = "PullRequestEvent"
	IssuesEventType       = "IssuesEvent"
	IssueCommentEventType = "IssueCommentEvent"
	WatchEventType        = "WatchEvent"
	ForkEventType         = "ForkEvent"
	CreateEventType       = "CreateEvent"
	DeleteEventType       = "DeleteEvent"
)

// Actor is the account that triggered an event
type Actor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// EventRepo identifies the repository an event happened in
type EventRepo struct {
	Name string `json:"name"`
}

// Event is an upstream activity event. Payload holds the variant selected by
// Type; types without a dedicated variant decode to *UnknownPayload.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Actor     Actor     `json:"actor"`
	Repo      EventRepo `json:"repo"`
	Payload   Payload   `json:"payload"`
	CreatedAt string    `json:"created_at"`
}

// Payload is the type-dependent part of an Event
type Payload interface {
	payloadType() string
}

type PushCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

type PushPayload struct {
	Size    int          `json:"size"`
	Ref     string       `json:"ref"`
	Commits []PushCommit `json:"commits"`
}

type PullRequestPayload struct {
	Action      string `json:"action"`
	Number      int    `json:"number"`
	PullRequest *Issue `json:"pull_request"`
}

type IssuesPayload struct {
	Action string `json:"action"`
	Issue  *Issue `json:"issue"`
}

type IssueCommentPayload struct {
	Action string `json:"action"`
	Issue  *Issue `json:"issue"`
}

type WatchPayload struct {
	Action string `json:"action"`
}

type ForkPayload struct {
	Forkee *Repository `json:"forkee"`
}

type CreatePayload struct {
	RefType string `json:"ref_type"`
	Ref     string `json:"ref"`
}

type DeletePayload struct {
	RefType string `json:"ref_type"`
	Ref     string `json:"ref"`
}

// UnknownPayload keeps the raw payload of event types without a variant
type UnknownPayload struct {
	Type string
	Raw  json.RawMessage
}

func (*PushPayload) payloadType() string         { return PushEventType }
func (*PullRequestPayload) payloadType() string  { return PullRequestEventType }
func (*IssuesPayload) payloadType() string       { return IssuesEventType }
func (*IssueCommentPayload) payloadType() string { return IssueCommentEventType }
func (*WatchPayload) payloadType() string        { return WatchEventType }
func (*ForkPayload) payloadType() string         { return ForkEventType }
func (*CreatePayload) payloadType() string       { return CreateEventType }
func (*DeletePayload) payloadType() string       { return DeleteEventType }
func (p *UnknownPayload) payloadType() string    { return p.Type }

// newPayload returns an empty variant for the event type
func newPayload(eventType string) Payload {
	switch eventType {
	case PushEventType:
		return &PushPayload{}
	case PullRequestEventType:
		return &PullRequestPayload{}
	case IssuesEventType:
		return &IssuesPayload{}
	case IssueCommentEventType:
		return &IssueCommentPayload{}
	case WatchEventType:
		return &WatchPayload{}
	case ForkEventType:
		return &ForkPayload{}
	case CreateEventType:
		return &CreatePayload{}
	case DeleteEventType:
		return &DeletePayload{}
	default:
		return &UnknownPayload{Type: eventType}
	}
}

// UnmarshalJSON decodes the envelope and then the payload variant for Type
func (e *Event) UnmarshalJSON(data []byte) error {
	type envelope Event
	var raw struct {
		envelope
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Event(raw.envelope)
	payload := newPayload(e.Type)

	if unknown, ok := payload.(*UnknownPayload); ok {
		unknown.Raw = raw.Payload
	} else if len(raw.Payload) > 0 && string(raw.Payload) != "null" {
		if err := json.Unmarshal(raw.Payload, payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", e.Type, err)
		}
	}

	e.Payload = payload
	return nil
}

// MarshalJSON encodes the event with its payload variant
func (e Event) MarshalJSON() ([]byte, error) {
	type envelope Event
	var payload any = e.Payload
	if unknown, ok := e.Payload.(*UnknownPayload); ok {
		payload = unknown.Raw
	}
	return json.Marshal(struct {
		envelope
		Payload any `json:"payload"`
	}{envelope(e), payload})
}
