package model

import "time"

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Priority is the five-tier task priority, Critical highest.
type Priority string

const (
	PriorityCritical   Priority = "critical"
	PriorityHigh       Priority = "high"
	PriorityNormal     Priority = "normal"
	PriorityLow        Priority = "low"
	PriorityBackground Priority = "background"
)

var priorityRanks = map[Priority]int{
	PriorityCritical:   4,
	PriorityHigh:       3,
	PriorityNormal:     2,
	PriorityLow:        1,
	PriorityBackground: 0,
}

// Rank returns the ordering weight of the priority; unknown tiers rank lowest.
func (p Priority) Rank() int {
	return priorityRanks[p]
}

type TaskKind string

const (
	TaskSpikeProcessing          TaskKind = "spike_processing"
	TaskPlasticityUpdate         TaskKind = "plasticity_update"
	TaskConsciousnessComputation TaskKind = "consciousness_computation"
	TaskEmotionalProcessing      TaskKind = "emotional_processing"
	TaskMemoryConsolidation      TaskKind = "memory_consolidation"
	TaskEnergyOptimization       TaskKind = "energy_optimization"
	TaskSystemMaintenance        TaskKind = "system_maintenance"
)

type TaskState string

const (
	TaskQueued         TaskState = "queued"
	TaskScheduled      TaskState = "scheduled"
	TaskExecuting      TaskState = "executing"
	TaskCompleted      TaskState = "completed"
	TaskDeadlineMissed TaskState = "deadline_missed"
)

// ResourceRequirements is the per-task demand against the hardware pool.
type ResourceRequirements struct {
	CPUCores           int      `json:"cpu_cores"`
	MemoryMB           int64    `json:"memory_mb"`
	NeuromorphicUnits  int      `json:"neuromorphic_units"`
	EnergyBudget       float64  `json:"energy_budget"`
	ExclusiveResources []string `json:"exclusive_resources,omitempty"`
}

// SchedulableTask is a unit of work submitted to the scheduler. Deadline is
// an offset from the scheduling origin; Period zero means aperiodic.
type SchedulableTask struct {
	ID           string               `json:"id"`
	Kind         TaskKind             `json:"kind"`
	Priority     Priority             `json:"priority"`
	Deadline     time.Duration        `json:"deadline"`
	Period       time.Duration        `json:"period,omitempty"`
	WCET         time.Duration        `json:"wcet"`
	Energy       float64              `json:"energy"`
	Dependencies []string             `json:"dependencies,omitempty"`
	Resources    ResourceRequirements `json:"resources"`
}

type AssignedResources struct {
	CPUCores          []int   `json:"cpu_cores"`
	MemoryMB          int64   `json:"memory_mb"`
	NeuromorphicUnits []int   `json:"neuromorphic_units"`
	Energy            float64 `json:"energy"`
}

// ScheduledTask is a task placed on the timeline, Start offset from origin.
type ScheduledTask struct {
	TaskID   string            `json:"task_id"`
	Start    time.Duration     `json:"start"`
	Duration time.Duration     `json:"duration"`
	Assigned AssignedResources `json:"assigned"`
	State    TaskState         `json:"state"`
}

// ExecutingTask is the monitoring view of an in-flight task.
type ExecutingTask struct {
	TaskID              string        `json:"task_id"`
	Priority            Priority      `json:"priority"`
	Start               time.Duration `json:"start"`
	EstimatedCompletion time.Duration `json:"estimated_completion"`
	Deadline            time.Duration `json:"deadline"`
	Progress            float64       `json:"progress"`
}

type CriticalPath struct {
	CriticalTasks       []string `json:"critical_tasks,omitempty"`
	BottleneckResources []string `json:"bottleneck_resources,omitempty"`
	Suggestions         []string `json:"suggestions,omitempty"`
}

type TimingAnalysis struct {
	Schedulable       bool                     `json:"schedulable"`
	Utilization       float64                  `json:"utilization"`
	WorstCaseResponse map[string]time.Duration `json:"worst_case_response,omitempty"`
	MissProbability   float64                  `json:"miss_probability"`
	CriticalPath      CriticalPath             `json:"critical_path"`
}

type ActionKind string

const (
	ActionRaisePriority ActionKind = "raise_priority"
	ActionPreemptLower  ActionKind = "preempt_lower_priority"
	ActionAddResources  ActionKind = "add_resources"
	ActionReschedule    ActionKind = "reschedule"
	ActionNotify        ActionKind = "notify"
)

type SchedulingAction struct {
	Kind   ActionKind `json:"kind"`
	TaskID string     `json:"task_id"`
}

type DeadlineMissPrediction struct {
	TaskID          string        `json:"task_id"`
	MissProbability float64       `json:"miss_probability"`
	ExpectedDelay   time.Duration `json:"expected_delay"`
	Impact          float64       `json:"impact"`
}

type DeadlineMonitoringResult struct {
	TasksAtRisk []string                 `json:"tasks_at_risk,omitempty"`
	Predictions []DeadlineMissPrediction `json:"predictions,omitempty"`
	Actions     []SchedulingAction       `json:"actions,omitempty"`
}

type TimingGuarantees struct {
	HardRealTime            bool          `json:"hard_real_time"`
	SoftRealTimeProbability float64       `json:"soft_real_time_probability"`
	MaxResponse             time.Duration `json:"max_response"`
	AvgResponse             time.Duration `json:"avg_response"`
	JitterMin               time.Duration `json:"jitter_min"`
	JitterMax               time.Duration `json:"jitter_max"`
}

type ResourceAllocation struct {
	CPUUtilization          float64  `json:"cpu_utilization"`
	MemoryUtilization       float64  `json:"memory_utilization"`
	NeuromorphicUtilization float64  `json:"neuromorphic_utilization"`
	EnergyUtilization       float64  `json:"energy_utilization"`
	Conflicts               []string `json:"conflicts,omitempty"`
}

type SchedulingPerformanceMetrics struct {
	SchedulingOverhead    time.Duration `json:"scheduling_overhead"`
	ContextSwitchOverhead time.Duration `json:"context_switch_overhead"`
	DeadlineMissRate      float64       `json:"deadline_miss_rate"`
	AvgWaitingTime        time.Duration `json:"avg_waiting_time"`
	Throughput            float64       `json:"throughput"`
}

type SchedulingResult struct {
	Tasks      []ScheduledTask              `json:"tasks"`
	Policy     string                       `json:"policy"`
	Guarantees TimingGuarantees             `json:"guarantees"`
	Allocation ResourceAllocation           `json:"allocation"`
	Metrics    SchedulingPerformanceMetrics `json:"metrics"`
	Analysis   TimingAnalysis               `json:"analysis"`
}

// ProcessingRequirements names the categories of work a caller wants
// scheduled, e.g. "consciousness computation".
type ProcessingRequirements struct {
	Workloads []string `json:"workloads"`
}

type HardwareConstraints struct {
	AvailableCores    int     `json:"available_cores"`
	MemoryLimitMB     int64   `json:"memory_limit_mb"`
	NeuromorphicUnits int     `json:"neuromorphic_units"`
	EnergyBudget      float64 `json:"energy_budget"`
}

type RealTimeConstraints struct {
	MaxLatency time.Duration `json:"max_latency"`
	Horizon    time.Duration `json:"horizon,omitempty"`
}

// OptimizationConfig carries the timing and hardware constraints supplied by
// external callers alongside a scheduling or energy request.
type OptimizationConfig struct {
	RealTime     RealTimeConstraints `json:"real_time"`
	Hardware     HardwareConstraints `json:"hardware"`
	EnergyBudget float64             `json:"energy_budget"`
}

// NeuromorphicResult is one processing pass through the spiking network.
type NeuromorphicResult struct {
	OutputSpikes    []float64     `json:"output_spikes"`
	EfficiencyScore float64       `json:"efficiency_score"`
	EnergyConsumed  float64       `json:"energy_consumed"`
	Latency         time.Duration `json:"latency"`
}

// NetworkStats is the read-only view of a network handed to the energy
// optimizer; it never exposes mutable simulator state.
type NetworkStats struct {
	Neurons     int    `json:"neurons"`
	Synapses    int    `json:"synapses"`
	TotalSpikes uint64 `json:"total_spikes"`
}

type EfficiencyMetrics struct {
	OperationsPerJoule     float64 `json:"operations_per_joule"`
	SpikesPerJoule         float64 `json:"spikes_per_joule"`
	SynapticOpsPerJoule    float64 `json:"synaptic_ops_per_joule"`
	MemoryAccessesPerJoule float64 `json:"memory_accesses_per_joule"`
}

type EnergyMeasurement struct {
	TotalPower    float64            `json:"total_power"`
	Breakdown     map[string]float64 `json:"breakdown,omitempty"`
	Efficiency    EfficiencyMetrics  `json:"efficiency"`
	Opportunities []string           `json:"opportunities,omitempty"`
}

type EnergyOptimizationResult struct {
	TotalEnergyConsumed float64  `json:"total_energy_consumed"`
	EnergySavings       float64  `json:"energy_savings"`
	Strategies          []string `json:"strategies,omitempty"`
}

// ProcessingRun is the persisted record of one facade Process call.
type ProcessingRun struct {
	VersionedRecord
	ID              string  `json:"id"`
	CreatedAtUTC    string  `json:"created_at_utc"`
	InputSize       int     `json:"input_size"`
	OutputSize      int     `json:"output_size"`
	SpikeCount      uint64  `json:"spike_count"`
	EfficiencyScore float64 `json:"efficiency_score"`
	EnergyConsumed  float64 `json:"energy_consumed"`
	LatencyMicros   int64   `json:"latency_micros"`
}

// SchedulingRun is the persisted record of one facade Schedule call.
type SchedulingRun struct {
	VersionedRecord
	ID           string  `json:"id"`
	CreatedAtUTC string  `json:"created_at_utc"`
	TaskCount    int     `json:"task_count"`
	Policy       string  `json:"policy"`
	Schedulable  bool    `json:"schedulable"`
	Utilization  float64 `json:"utilization"`
}

// EnergyReport is the persisted record of one facade OptimizeEnergy call.
type EnergyReport struct {
	VersionedRecord
	ID           string   `json:"id"`
	CreatedAtUTC string   `json:"created_at_utc"`
	TotalPower   float64  `json:"total_power"`
	Savings      float64  `json:"savings"`
	Strategies   []string `json:"strategies,omitempty"`
}
