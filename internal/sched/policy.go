package sched

// PolicyConsciousnessAwareEDF is the default and only built-in policy:
// earliest deadline first with priority as tie-break, preemption and
// priority inheritance enabled, deadlines enforced.
const PolicyConsciousnessAwareEDF = "consciousness_aware_edf"

// Policy is a named scheduling discipline with its feature switches.
type Policy struct {
	Name                string `json:"name"`
	Preemption          bool   `json:"preemption"`
	PriorityInheritance bool   `json:"priority_inheritance"`
	DeadlineEnforcement bool   `json:"deadline_enforcement"`
}

func defaultPolicies() map[string]Policy {
	return map[string]Policy{
		PolicyConsciousnessAwareEDF: {
			Name:                PolicyConsciousnessAwareEDF,
			Preemption:          true,
			PriorityInheritance: true,
			DeadlineEnforcement: true,
		},
	}
}
