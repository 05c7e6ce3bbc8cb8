package memory

// Memory is the collaborator the ingestion path writes into. Anything
// exposing Add can receive chunks; the sqlite implementation in this
// package is the default.
type Memory interface {
	Add(text string) error
}
