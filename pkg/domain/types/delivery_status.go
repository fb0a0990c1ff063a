package types

// EmailStatus represents the delivery state of an email queue entry.
// This engine only writes PENDING; the external dispatcher owns the rest.
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "PENDING"
	EmailStatusSent    EmailStatus = "SENT"
	EmailStatusFailed  EmailStatus = "FAILED"
)

// DocumentRequestStatus represents the fulfillment state of a document request
type DocumentRequestStatus string

const (
	DocumentRequestStatusPending  DocumentRequestStatus = "PENDING"
	DocumentRequestStatusReceived DocumentRequestStatus = "RECEIVED"
)

// MeetingStatus represents the confirmation state of a meeting suggestion
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "PENDING"
	MeetingStatusConfirmed MeetingStatus = "CONFIRMED"
	MeetingStatusDeclined  MeetingStatus = "DECLINED"
)
