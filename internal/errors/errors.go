// Package errors defines the domain error taxonomy shared by services
// and handlers. Services return these values; the handler layer maps
// them onto HTTP statuses.
package errors

// DomainError is a coded error surfaced verbatim to API clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
