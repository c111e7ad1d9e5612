package snn

// spikeHistory is a fixed-capacity ring of spike events, oldest evicted
// first. Appends arrive in non-decreasing time order, which recentBySource
// relies on to stop scanning early.
type spikeHistory struct {
	buf  []SpikeEvent
	head int
	size int
}

func newSpikeHistory(capacity int) *spikeHistory {
	if capacity <= 0 {
		capacity = 1
	}
	return &spikeHistory{buf: make([]SpikeEvent, capacity)}
}

func (h *spikeHistory) Append(ev SpikeEvent) {
	if h.size == len(h.buf) {
		h.buf[h.head] = ev
		h.head = (h.head + 1) % len(h.buf)
		return
	}
	h.buf[(h.head+h.size)%len(h.buf)] = ev
	h.size++
}

func (h *spikeHistory) Len() int {
	return h.size
}

func (h *spikeHistory) Cap() int {
	return len(h.buf)
}

// recentBySource groups the spike times of every event at or after sinceMS,
// keyed by source neuron. Times per source are oldest-first.
func (h *spikeHistory) recentBySource(sinceMS float64) map[NeuronRef][]float64 {
	out := make(map[NeuronRef][]float64)
	first := h.size
	for i := h.size - 1; i >= 0; i-- {
		ev := h.buf[(h.head+i)%len(h.buf)]
		if ev.TimeMS < sinceMS {
			break
		}
		first = i
	}
	for i := first; i < h.size; i++ {
		ev := h.buf[(h.head+i)%len(h.buf)]
		out[ev.Source] = append(out[ev.Source], ev.TimeMS)
	}
	return out
}

// Events returns a snapshot of the buffer, oldest first.
func (h *spikeHistory) Events() []SpikeEvent {
	out := make([]SpikeEvent, 0, h.size)
	for i := 0; i < h.size; i++ {
		out = append(out, h.buf[(h.head+i)%len(h.buf)])
	}
	return out
}
