package snn

import "math"

// stdpTauMS is the time constant of the exponential pairing falloff. It is
// a property of the plasticity rule, not of the pairing window: widening
// the window admits more pairs but does not flatten their decay.
const stdpTauMS = 20.0

// applySTDP adjusts every synapse from the recent spike timing of its two
// endpoints. Pre-before-post pairs potentiate, post-before-pre pairs
// depress, both decaying exponentially with the pair's time difference.
// Weights stay clamped to [weightMin, weightMax].
func (n *Network) applySTDP() {
	window := n.cfg.STDPWindowMS
	recent := n.history.recentBySource(n.nowMS - window)
	if len(recent) == 0 {
		return
	}

	for i := range n.synapses {
		s := &n.synapses[i]
		preTimes := recent[s.Pre]
		postTimes := recent[s.Post]
		if len(preTimes) == 0 || len(postTimes) == 0 {
			continue
		}

		delta := 0.0
		for _, pre := range preTimes {
			for _, post := range postTimes {
				dt := post - pre
				if math.Abs(dt) > s.Plasticity.WindowMS {
					continue
				}
				if dt > 0 {
					delta += s.Plasticity.LTPRate * math.Exp(-dt/stdpTauMS)
				} else {
					delta -= s.Plasticity.LTDRate * math.Exp(dt/stdpTauMS)
				}
			}
		}
		if delta == 0 {
			continue
		}
		s.Weight = clampWeight(s.Weight + delta)
	}
}

func clampWeight(w float64) float64 {
	if w < weightMin {
		return weightMin
	}
	if w > weightMax {
		return weightMax
	}
	return w
}
