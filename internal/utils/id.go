package utils

import "github.com/google/uuid"

// NewLineItemID generates the client side id of a cart line
func NewLineItemID() string {
	return uuid.NewString()
}

// NewRequestID generates a request id for logs and upstream correlation
func NewRequestID() string {
	return uuid.NewString()
}
