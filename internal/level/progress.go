package level

// Progress holds the completion flags of the rooms for one session. Rooms
// are shared between levels, so a flag set in one level stays set until
// Reset.
type Progress struct {
	completed [roomCount]bool
}

// NewProgress returns progress with every room open.
func NewProgress() *Progress {
	return &Progress{}
}

// Complete marks a room as done. The Hallway is never completed.
func (p *Progress) Complete(id RoomID) {
	if id == Hallway || id < 0 || id >= roomCount {
		return
	}
	p.completed[id] = true
}

// Completed reports whether the room has been done.
func (p *Progress) Completed(id RoomID) bool {
	if id < 0 || id >= roomCount {
		return false
	}
	return p.completed[id]
}

// AllCompleted reports whether every non-Hallway room of lvl is done.
func (p *Progress) AllCompleted(lvl *Level) bool {
	for _, r := range lvl.Rooms() {
		if !r.IsHallway() && !p.completed[r.ID] {
			return false
		}
	}
	return true
}

// CompletedCount returns the number of done rooms in lvl.
func (p *Progress) CompletedCount(lvl *Level) int {
	n := 0
	for _, r := range lvl.Rooms() {
		if !r.IsHallway() && p.completed[r.ID] {
			n++
		}
	}
	return n
}

// Reset reopens every room.
func (p *Progress) Reset() {
	p.completed = [roomCount]bool{}
}
