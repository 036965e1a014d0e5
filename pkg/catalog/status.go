package catalog

//go:generate go tool enumer -type Status -trimprefix Status -transform lower -json -yaml -output status.gen.go

// Status is the outcome of an ingestion attempt.
type Status int

const (
	StatusSuccess Status = iota
	StatusFail
)
