package snn

import "testing"

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	h := newSpikeHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(SpikeEvent{Source: NeuronRef{Index: i}, TimeMS: float64(i)})
	}

	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	events := h.Events()
	if events[0].TimeMS != 2 || events[2].TimeMS != 4 {
		t.Fatalf("unexpected retained events: %+v", events)
	}
}

func TestHistoryRecentBySource(t *testing.T) {
	h := newSpikeHistory(10)
	a := NeuronRef{Layer: 0, Index: 1}
	b := NeuronRef{Layer: 1, Index: 2}
	h.Append(SpikeEvent{Source: a, TimeMS: 1.0})
	h.Append(SpikeEvent{Source: b, TimeMS: 5.0})
	h.Append(SpikeEvent{Source: a, TimeMS: 9.0})

	recent := h.recentBySource(4.0)
	if len(recent) != 2 {
		t.Fatalf("sources = %d, want 2", len(recent))
	}
	if times := recent[a]; len(times) != 1 || times[0] != 9.0 {
		t.Fatalf("source a times = %v, want [9]", times)
	}
	if times := recent[b]; len(times) != 1 || times[0] != 5.0 {
		t.Fatalf("source b times = %v, want [5]", times)
	}
}

func TestHistoryRecentBySourceEmptyWindow(t *testing.T) {
	h := newSpikeHistory(4)
	h.Append(SpikeEvent{Source: NeuronRef{}, TimeMS: 1.0})

	if recent := h.recentBySource(2.0); len(recent) != 0 {
		t.Fatalf("expected empty window, got %v", recent)
	}
}
