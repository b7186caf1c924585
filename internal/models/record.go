package models

// Record is the common surface every persisted entity exposes to the
// storage layer: a unique identifier and the owning user.
type Record interface {
	RecordID() string
	RecordOwner() string
}
