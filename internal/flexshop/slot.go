package flexshop

// Slot is one committed operation interval on a machine.
type Slot struct {
	Job   int
	Start int
	End   int
}

// MachineSchedule is the committed slot sequence of one machine, sorted by
// start time and non-overlapping.
type MachineSchedule []Slot

// FactorySchedule holds one MachineSchedule per machine of a factory.
type FactorySchedule []MachineSchedule

// Schedule holds one FactorySchedule per factory.
type Schedule []FactorySchedule

// Insert places an operation of the given job and duration on the machine,
// no earlier than earliest, and returns the resulting schedule. The first
// idle gap from the front that ends after earliest and fits the duration at
// max(earliest, gap start) receives the slot; committed slots never move.
// Without a fitting gap the slot is appended after the last one.
//
// Insert is pure: it returns a fresh slice and leaves the receiver intact,
// so callers may trial-insert and discard.
func (s MachineSchedule) Insert(job, earliest, dur int) MachineSchedule {
	out := make(MachineSchedule, 0, len(s)+1)
	if len(s) == 0 {
		return append(out, Slot{Job: job, Start: earliest, End: earliest + dur})
	}

	// The region before the first slot counts as an idle gap starting at 0.
	prevEnd := 0
	for i, next := range s {
		if next.Start > earliest {
			start := max(earliest, prevEnd)
			if next.Start-start >= dur {
				out = append(out, s[:i]...)
				out = append(out, Slot{Job: job, Start: start, End: start + dur})
				return append(out, s[i:]...)
			}
		}
		prevEnd = next.End
	}

	start := max(earliest, s[len(s)-1].End)
	out = append(out, s...)
	return append(out, Slot{Job: job, Start: start, End: start + dur})
}

// LastEnd is the machine's completion time: the end of its last slot, or 0
// for an empty schedule.
func (s MachineSchedule) LastEnd() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].End
}

// Makespan is the maximum completion time over the given machine schedules,
// 0 when the collection is empty or all schedules are empty.
func Makespan(schedules []MachineSchedule) int {
	ms := 0
	for _, s := range schedules {
		if end := s.LastEnd(); end > ms {
			ms = end
		}
	}
	return ms
}

// Makespan flattens all factories' machine schedules and aggregates.
func (s Schedule) Makespan() int {
	ms := 0
	for _, fs := range s {
		if end := Makespan(fs); end > ms {
			ms = end
		}
	}
	return ms
}

// Slots counts committed slots across the whole schedule.
func (s Schedule) Slots() int {
	n := 0
	for _, fs := range s {
		for _, ms := range fs {
			n += len(ms)
		}
	}
	return n
}
