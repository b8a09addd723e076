package models

// Lifecycle is the soft-delete state shared by catalog rows. Deletes
// move a row to DISABLED; it stays queryable by id and can be
// re-enabled later.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "ACTIVE"
	LifecycleDisabled Lifecycle = "DISABLED"
)

// Active reports whether the row is visible in default listings.
func (l Lifecycle) Active() bool { return l == LifecycleActive }
