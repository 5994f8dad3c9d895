package entity

import "errors"

var (
	// ErrIdentityEstablished identity was already assigned and cannot change.
	ErrIdentityEstablished = errors.New("entity: identity already established")
)
