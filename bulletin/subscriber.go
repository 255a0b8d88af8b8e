package bulletin

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// Handler processes one sliced report, as produced by Scanner.Split.
type Handler func(report string)

// Subscriber feeds bulletin transmissions arriving over NATS through a
// Scanner and into a Handler, one report at a time. Grounded on
// plane-watch-acars-parser's NATS-based message ingestion (its go.mod
// pulls in github.com/nats-io/nats.go for the same kind of feed); no
// direct call-site usage of the client appears elsewhere in the
// retrieved pack, so the connect/subscribe shape here follows the
// library's own documented API.
type Subscriber struct {
	conn    *nats.Conn
	scanner Scanner
}

// Connect dials a NATS server and returns a Subscriber ready to
// subscribe to one or more subjects.
func Connect(url string) (*Subscriber, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("bulletin: connect nats: %w", err)
	}
	return &Subscriber{conn: conn}, nil
}

// Close drains and closes the underlying connection.
func (s *Subscriber) Close() {
	_ = s.conn.Drain()
}

// Subscribe registers handler to run once per sliced report arriving on
// subject. Each message payload is treated as one raw bulletin
// transmission, which may contain multiple reports.
func (s *Subscriber) Subscribe(subject string, handler Handler) (*nats.Subscription, error) {
	return s.conn.Subscribe(subject, func(msg *nats.Msg) {
		for _, report := range s.scanner.Split(string(msg.Data)) {
			handler(report)
		}
	})
}
