package domain

// ScheduleEntry is a named time commitment. On a user it names the meeting;
// on a meeting it names the attendee.
type ScheduleEntry struct {
	Name string
	Interval
}

// NewScheduleEntry creates a schedule entry.
func NewScheduleEntry(name string, interval Interval) ScheduleEntry {
	return ScheduleEntry{Name: name, Interval: interval}
}

// BusyWith reports whether any of entries overlaps the proposed interval.
func BusyWith(entries []ScheduleEntry, proposed Interval) bool {
	for _, e := range entries {
		if e.Overlaps(proposed) {
			return true
		}
	}
	return false
}
