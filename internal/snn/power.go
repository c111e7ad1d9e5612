package snn

// PowerModel estimates the energy drawn by one processing pass. The linear
// model is the default; callers may inject their own via Config.Power.
type PowerModel interface {
	Estimate(spikeCount uint64) float64
}

// LinearPowerModel charges a fixed baseline plus a per-spike cost, both in
// picojoules.
type LinearPowerModel struct {
	BaselinePJ float64
	PerSpikePJ float64
}

func (m LinearPowerModel) Estimate(spikeCount uint64) float64 {
	return m.BaselinePJ + float64(spikeCount)*m.PerSpikePJ
}
