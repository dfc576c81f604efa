package artwork

// Status is the terminal result of reconciling one (item, slot) pair.
type Status int

const (
	// StatusHealthy means the current artwork is reachable; nothing was changed.
	StatusHealthy Status = iota
	// StatusRestored means broken artwork was replaced from the backup store.
	StatusRestored
	// StatusRedownloaded means broken artwork was fetched fresh from the provider.
	StatusRedownloaded
	// StatusMissing means no source could supply artwork for the slot.
	StatusMissing
	// StatusErrored means an unexpected failure stopped reconciliation of the slot.
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusRestored:
		return "restored"
	case StatusRedownloaded:
		return "redownloaded"
	case StatusMissing:
		return "missing"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Outcome is the result of one reconciliation call. Err is set only for
// StatusErrored.
type Outcome struct {
	Status Status
	Err    error
}

// Tag returns the log tag for the outcome. Redownloads are tagged FORCE
// instead of FIX when force-refresh drove the repair.
func (o Outcome) Tag(force bool) string {
	switch o.Status {
	case StatusHealthy:
		return "OK"
	case StatusRestored:
		return "RESTORE"
	case StatusRedownloaded:
		if force {
			return "FORCE"
		}
		return "FIX"
	case StatusMissing:
		return "MISSING"
	default:
		return "ERROR"
	}
}
