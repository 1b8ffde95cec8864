package entity

import (
	"time"
)

type FeedbackType string

const (
	FeedbackNotification FeedbackType = "NOTIFICATION"
	FeedbackSuggestion   FeedbackType = "SUGGESTION"
	FeedbackComplaint    FeedbackType = "COMPLAINT"
)

type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "PENDING" // suggestions/complaints awaiting a response
	FeedbackResolved FeedbackStatus = "RESOLVED"
	FeedbackSent     FeedbackStatus = "SENT" // notifications
	FeedbackRead     FeedbackStatus = "READ"
)

// Feedback doubles as admin→employee notifications and employee→admin
// suggestions/complaints; Type tells them apart. Sender and recipient are
// business employee ids.
type Feedback struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Type        FeedbackType   `gorm:"not null" json:"type"`
	Title       string         `json:"title"`
	Content     string         `gorm:"type:text" json:"content"`
	SenderID    string         `gorm:"column:sender_id" json:"senderId"`
	SenderName  string         `gorm:"column:sender_name" json:"senderName"`
	RecipientID string         `gorm:"column:recipient_id" json:"recipientId"`
	Read        bool           `json:"read"`
	Response    string         `gorm:"type:text" json:"response"`
	Status      FeedbackStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	ResponseAt  *time.Time     `gorm:"column:response_at" json:"responseAt,omitempty"`
}
