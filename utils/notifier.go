package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// Event is a fire-and-forget notification. The original UI listened for these
// over a socket; here they are posted to a configurable webhook.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Notifier delivers events best-effort in the background. Publish never
// blocks the caller and delivery failures are logged, not returned: booking
// and upload success must not depend on notification delivery.
type Notifier struct {
	events     chan Event
	webhookURL string
	client     *resty.Client
	done       chan struct{}
}

// NewNotifier starts a notifier posting to webhookURL. An empty URL keeps the
// dispatcher running but skips delivery, so callers never need to branch.
func NewNotifier(webhookURL string) *Notifier {
	n := &Notifier{
		events:     make(chan Event, 64),
		webhookURL: webhookURL,
		client:     resty.New().SetTimeout(5 * time.Second),
		done:       make(chan struct{}),
	}
	go n.dispatch()
	return n
}

// Publish enqueues an event. When the queue is full the event is dropped.
func (n *Notifier) Publish(event Event) {
	select {
	case n.events <- event:
	default:
		log.Printf("Notifier queue full, dropping event: %s", event.Type)
	}
}

// Close stops the dispatcher after draining queued events.
func (n *Notifier) Close() {
	close(n.events)
	<-n.done
}

func (n *Notifier) dispatch() {
	defer close(n.done)
	for event := range n.events {
		if n.webhookURL == "" {
			continue
		}
		resp, err := n.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(event).
			Post(n.webhookURL)
		if err != nil {
			log.Printf("Notification delivery failed: %v", err)
			continue
		}
		if resp.IsError() {
			log.Printf("Notification webhook returned %d", resp.StatusCode())
		}
	}
}

// Notify is the process-wide notifier used by the handlers. It is replaced by
// InitNotifier at startup; the default drops nothing on the floor silently
// but delivers nowhere.
var Notify = NewNotifier("")

// InitNotifier wires the global notifier to the configured webhook.
func InitNotifier(webhookURL string) {
	Notify = NewNotifier(webhookURL)
}
