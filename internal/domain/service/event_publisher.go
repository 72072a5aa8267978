package service

import (
	"context"
)

// EventTypeDonationScheduled is published after a donation appointment is stored.
const EventTypeDonationScheduled = "donation.scheduled"

// DonationEvent describes a donation appointment for downstream consumers (reminders, site rosters).
type DonationEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	Type         string `json:"type"`
	DonationID   string `json:"donation_id"`
	UserID       string `json:"user_id"`
	DonationDate string `json:"donation_date"`
	BloodType    string `json:"blood_type"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonationEvent publishes a donation event for async processing
	PublishDonationEvent(ctx context.Context, event *DonationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
