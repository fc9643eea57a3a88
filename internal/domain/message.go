package domain

// Message is immutable once created. Ordering is the server's creation order.
type Message struct {
	ID        int       `json:"id"`
	RoomID    int       `json:"room_id"`
	SenderID  int       `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
}
