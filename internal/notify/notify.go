// Package notify produces push-notification payloads for trip events.
// Delivery is a separate concern handled outside this service.
package notify

import "fmt"

// Payload is the notification content handed to the delivery layer.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
	Badge string `json:"badge"`
	URL   string `json:"url"`
}

const (
	defaultTitle = "True Travel AI"
	defaultIcon  = "/icons/icon-192x192.png"
	defaultBadge = "/icons/icon-72x72.png"
)

// New builds a payload with the standard branding around a message.
func New(message string) Payload {
	return Payload{
		Title: defaultTitle,
		Body:  message,
		Icon:  defaultIcon,
		Badge: defaultBadge,
		URL:   "/",
	}
}

// TripPlanned builds the message for a freshly persisted trip.
func TripPlanned(destination string, startDate string) Payload {
	return New(fmt.Sprintf("Your trip to %s starting %s is planned. Time to pack!", destination, startDate))
}
