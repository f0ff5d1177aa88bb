package trace

import "testing"

func TestRecorder_AppendOrder(t *testing.T) {
	r := &Recorder{}
	r.Append(StepPlan, "first")
	r.Append(StepAnalyze, "second")
	r.Append(StepAnalyze, "third")

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Message != "first" || entries[2].Message != "third" {
		t.Errorf("entries out of order: %+v", entries)
	}
}

func TestRecorder_EntriesReturnsCopy(t *testing.T) {
	r := &Recorder{}
	r.Append(StepPlan, "original")

	entries := r.Entries()
	entries[0].Message = "mutated"

	if got := r.Entries()[0].Message; got != "original" {
		t.Errorf("recorder state mutated through returned slice: %q", got)
	}
}
