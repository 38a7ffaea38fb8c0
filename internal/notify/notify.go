// Package notify tells the maker about new commission requests.
package notify

import (
	"context"
	"log/slog"

	"crochetstudio/internal/domain"
)

// Notifier is called once per submitted request.
type Notifier interface {
	CommissionSubmitted(ctx context.Context, ack domain.Acknowledgement) error
}

// LogNotifier writes submissions to the structured log; the maker follows up by hand.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) CommissionSubmitted(ctx context.Context, ack domain.Acknowledgement) error {
	n.log.InfoContext(ctx, "commission_submitted",
		"reference", ack.Reference,
		"kind", string(ack.Kind),
		"email", ack.Email,
		"slot_week", ack.SlotWeek,
		"item", ack.ItemName,
		"fee", ack.Fee,
	)
	return nil
}

// Multi fans out to several notifiers and returns the first error after calling all of them.
type Multi []Notifier

func (m Multi) CommissionSubmitted(ctx context.Context, ack domain.Acknowledgement) error {
	var first error
	for _, n := range m {
		if err := n.CommissionSubmitted(ctx, ack); err != nil && first == nil {
			first = err
		}
	}
	return first
}
