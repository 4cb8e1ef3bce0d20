package entities

// MessageTimeLayout is the minute-resolution timestamp stored with messages.
const MessageTimeLayout = "2006-01-02 15:04"

// Message is a chat line posted to a project.
type Message struct {
	ID        int64
	ProjectID int64
	UserID    int64
	Username  string
	Body      string
	Timestamp string
}
