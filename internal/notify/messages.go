package notify

import (
	"encoding/json"
	"time"
)

// ActivationEmailMessage is the payload the mailer worker consumes to send
// an account activation email.
type ActivationEmailMessage struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	Timestamp time.Time `json:"timestamp"`
}

// NewActivationEmailMessage creates a message for the given recipient.
func NewActivationEmailMessage(email, name, token string) *ActivationEmailMessage {
	return &ActivationEmailMessage{
		Email:     email,
		Name:      name,
		Token:     token,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ActivationEmailMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ActivationEmailMessageFromJSON creates a message from JSON bytes.
func ActivationEmailMessageFromJSON(data []byte) (*ActivationEmailMessage, error) {
	var msg ActivationEmailMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
