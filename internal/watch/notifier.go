package watch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/toolindex/internal/catalog"
	"git.home.luguber.info/inful/toolindex/internal/logfields"
)

// CatalogBuiltEvent announces a rewritten catalog to downstream consumers
// (index assembly, deploy hooks) over NATS.
type CatalogBuiltEvent struct {
	RunID      string         `json:"run_id"`
	Tools      int            `json:"tools"`
	TierCounts map[string]int `json:"tier_counts"`
	Output     string         `json:"output"`
	FinishedAt time.Time      `json:"finished_at"`
}

// Notifier publishes catalog-built events.
type Notifier struct {
	conn    *nats.Conn
	subject string
}

// NewNotifier connects to NATS. Notification is optional infrastructure;
// callers treat a nil Notifier as disabled.
func NewNotifier(url, subject string) (*Notifier, error) {
	conn, err := nats.Connect(url, nats.Name("toolindex"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS %s: %w", url, err)
	}
	slog.Info("NATS notifier connected", logfields.Subject(subject))
	return &Notifier{conn: conn, subject: subject}, nil
}

// CatalogBuilt publishes one event for a completed build. Failures are
// reported to the caller but never fail the build that produced the catalog.
func (n *Notifier) CatalogBuilt(res *catalog.Result, output string) error {
	if n == nil {
		return nil
	}
	payload, err := json.Marshal(CatalogBuiltEvent{
		RunID:      res.RunID,
		Tools:      len(res.Tools),
		TierCounts: res.TierCounts,
		Output:     output,
		FinishedAt: res.Finished,
	})
	if err != nil {
		return fmt.Errorf("marshal catalog event: %w", err)
	}
	if err := n.conn.Publish(n.subject, payload); err != nil {
		return fmt.Errorf("publish catalog event: %w", err)
	}
	return nil
}

// Close drains and closes the connection.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	_ = n.conn.Drain()
}
