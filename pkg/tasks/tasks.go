// Package tasks defines the structure for tasks that are sent to Kafka.
package tasks

import (
	"fmt"
	"time"
)

// Inquiry kinds.
const (
	KindReservation = "reservation"
	KindFeedback    = "feedback"
)

// InquiryTask announces a stored reservation inquiry or feedback message to the front desk.
type InquiryTask struct {
	Kind        string    `json:"kind"`
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Summary     string    `json:"summary"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Key identifies the inquiry across retries.
func (t InquiryTask) Key() string {
	return fmt.Sprintf("%s-%d", t.Kind, t.ID)
}
