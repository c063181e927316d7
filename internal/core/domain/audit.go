package domain

import "time"

// Audit decisions.
const (
	AuditGranted = "granted"
	AuditDenied  = "denied"
)

// AuditEvent records one authorization or authentication decision. Events are
// produced synchronously on the request path and persisted asynchronously.
type AuditEvent struct {
	Username  string    `json:"username,omitempty"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource,omitempty"`
	Decision  string    `json:"decision"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
