package response

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}

type PaymobSetup struct {
	IframeURL string `json:"iframeUrl"`
}

type PaypalSetup struct {
	ClientToken string `json:"clientToken"`
}

type PaypalOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// BookingEvent is the body published for every booking or payment write.
type BookingEvent struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	OccurredAt string `json:"occurred_at"`
	Payload    any    `json:"payload"`
}
