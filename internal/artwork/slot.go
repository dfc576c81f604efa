// Package artwork implements the artwork reconciliation engine: deciding,
// per media item and per artwork slot, whether the current artwork is usable
// and which fallback source should repair it when it is not.
package artwork

// Slot identifies one of the artwork kinds tracked per item.
type Slot int

const (
	SlotPoster Slot = iota
	SlotBackground
)

// Slots lists every artwork slot in processing order.
var Slots = []Slot{SlotPoster, SlotBackground}

func (s Slot) String() string {
	switch s {
	case SlotPoster:
		return "poster"
	case SlotBackground:
		return "background"
	default:
		return "unknown"
	}
}

// FileName returns the backup file name for the slot.
func (s Slot) FileName() string {
	return s.String() + ".jpg"
}
