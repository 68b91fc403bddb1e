package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/errors"
)

type fakeNotifier struct {
	result domain.DeliveryResult
	err    error
	posts  []*domain.Message
}

func (f *fakeNotifier) Method() string { return "api/chat.postMessage" }

func (f *fakeNotifier) Post(_ context.Context, msg *domain.Message) (domain.DeliveryResult, error) {
	f.posts = append(f.posts, msg)
	return f.result, f.err
}

func TestDeliver_Success(t *testing.T) {
	n := &fakeNotifier{result: domain.DeliveryResult{OK: true}}
	svc := New(n, "C0123")

	result, err := svc.Deliver(context.Background(), "digest text")
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if result == nil || !result.OK {
		t.Fatalf("result = %+v, want ok", result)
	}
	if len(n.posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(n.posts))
	}
	msg := n.posts[0]
	if msg.ChannelID != "C0123" || msg.Text != "digest text" || !msg.LinkNames {
		t.Errorf("message = %+v", msg)
	}
}

func TestDeliver_EmptyTextSkipsNotifier(t *testing.T) {
	n := &fakeNotifier{result: domain.DeliveryResult{OK: true}}

	result, err := New(n, "C0123").Deliver(context.Background(), "")
	if err != nil || result != nil {
		t.Fatalf("deliver empty = %+v, %v", result, err)
	}
	if len(n.posts) != 0 {
		t.Errorf("notifier called %d times for empty digest", len(n.posts))
	}
}

func TestDeliver_NotOK(t *testing.T) {
	n := &fakeNotifier{result: domain.DeliveryResult{OK: false, Error: "invalid_auth"}}

	_, err := New(n, "C0123").Deliver(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, errors.ErrDeliveryFailed) {
		t.Errorf("error %v does not wrap ErrDeliveryFailed", err)
	}

	var de *domain.DeliveryError
	if !stderrors.As(err, &de) {
		t.Fatalf("error %v is not a DeliveryError", err)
	}
	if de.Description != "invalid_auth" || de.Method != "api/chat.postMessage" {
		t.Errorf("delivery error = %+v", de)
	}
}

func TestDeliver_TransportError(t *testing.T) {
	boom := stderrors.New("connection reset")
	n := &fakeNotifier{err: boom}

	_, err := New(n, "C0123").Deliver(context.Background(), "text")
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
	if !stderrors.Is(err, errors.ErrDeliveryFailed) {
		t.Errorf("transport error %v does not wrap ErrDeliveryFailed", err)
	}
	var de *domain.DeliveryError
	if stderrors.As(err, &de) {
		t.Error("transport error must not be reported as an API refusal")
	}
}
