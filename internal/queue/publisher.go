package queue

import "context"

// Publisher fans announcement lifecycle events out to the broker. Delivery
// to readers (mail, push) belongs to other services; only the producing
// side lives here.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, event any, reqID string) error
	Close() error
}

type NoopPub struct{}

func NewNoop() Publisher { return NoopPub{} }

func (NoopPub) Publish(ctx context.Context, exchange, key string, event any, reqID string) error {
	return nil
}
func (NoopPub) Close() error { return nil }
