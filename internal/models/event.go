package models

// Event represents an audit record for a data mutation, published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the mutation occurred.
	UserID    string `json:"user_id"`   // UserID is the identifier of the acting user, empty for anonymous routes.
	Entity    string `json:"entity"`    // Entity is the mutated record kind, e.g. "trip" or "wishlist".
	EntityID  string `json:"entity_id"` // EntityID is the identifier of the mutated record.
	Operation string `json:"operation"` // Operation describes the mutation, e.g. "create", "update", or "delete".
}
