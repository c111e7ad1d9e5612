package neuromorph

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"neuromorph/internal/energy"
	"neuromorph/internal/model"
	"neuromorph/internal/sched"
	"neuromorph/internal/snn"
	"neuromorph/internal/storage"
)

const defaultDBPath = "neuromorph.db"

// Options configures a Client. Zero values select the in-memory store, the
// default network shape and seed 0.
type Options struct {
	StoreKind string
	DBPath    string
	Seed      int64
	Network   *snn.Config
	Hardware  *model.HardwareConstraints
}

// Client is the public surface of the co-processor: one spiking network,
// one scheduler and one energy optimizer behind a single lock. Process and
// Initialize take the write lock; queries take the read lock.
type Client struct {
	mu sync.RWMutex

	store     storage.Store
	seed      int64
	netCfg    snn.Config
	net       *snn.Network
	scheduler *sched.Scheduler
	optimizer *energy.Optimizer
}

// ProcessSummary is the result of one Process call.
type ProcessSummary struct {
	RunID  string
	Result model.NeuromorphicResult
	Train  snn.TrainAnalysis
}

// ScheduleRequest names the workloads to plan and the constraints to plan
// under. An empty Policy selects the default EDF policy.
type ScheduleRequest struct {
	Workloads []string
	Policy    string
	Config    model.OptimizationConfig
}

type ScheduleSummary struct {
	RunID  string
	Result model.SchedulingResult
}

// OptimizeRequest carries the energy budget for an optimization pass.
type OptimizeRequest struct {
	Config model.OptimizationConfig
}

type OptimizeSummary struct {
	RunID       string
	Measurement model.EnergyMeasurement
	Result      model.EnergyOptimizationResult
}

type RunsRequest struct {
	Limit int
}

type RunItem struct {
	RunID           string
	CreatedAtUTC    string
	InputSize       int
	OutputSize      int
	SpikeCount      uint64
	EfficiencyScore float64
	EnergyConsumed  float64
	LatencyMicros   int64
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	netCfg := snn.DefaultConfig()
	if opts.Network != nil {
		netCfg = *opts.Network
	}
	var pool model.HardwareConstraints
	if opts.Hardware != nil {
		pool = *opts.Hardware
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:     store,
		seed:      opts.Seed,
		netCfg:    netCfg,
		scheduler: sched.New(pool),
		optimizer: energy.New(),
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Initialize builds the spiking network and prepares the store. A failed
// build leaves the client without a network; Process reports
// snn.ErrNotInitialized until a later Initialize succeeds.
func (c *Client) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Init(ctx); err != nil {
		return err
	}

	net, err := snn.New(c.netCfg, rand.New(rand.NewSource(c.seed)))
	if err != nil {
		c.net = nil
		return err
	}
	c.net = net
	return nil
}

// Process runs one spike pattern through the network, persists the run and
// returns the result with its train analysis. The simulation itself is not
// cancellable; ctx applies to persistence.
func (c *Client) Process(ctx context.Context, pattern []float64) (ProcessSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.net == nil {
		return ProcessSummary{}, snn.ErrNotInitialized
	}

	result, err := c.net.Process(pattern)
	if err != nil {
		return ProcessSummary{}, err
	}
	train := snn.AnalyzeTrain(result.OutputSpikes)

	runID := uuid.NewString()
	run := model.ProcessingRun{
		VersionedRecord: storage.Stamp(),
		ID:              runID,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339Nano),
		InputSize:       len(pattern),
		OutputSize:      len(result.OutputSpikes),
		SpikeCount:      c.net.Metrics().TotalSpikes,
		EfficiencyScore: result.EfficiencyScore,
		EnergyConsumed:  result.EnergyConsumed,
		LatencyMicros:   result.Latency.Microseconds(),
	}
	if err := c.store.SaveProcessingRun(ctx, run); err != nil {
		return ProcessSummary{}, fmt.Errorf("persist processing run: %w", err)
	}

	return ProcessSummary{RunID: runID, Result: result, Train: train}, nil
}

// Schedule plans the requested workloads and persists the outcome.
func (c *Client) Schedule(ctx context.Context, req ScheduleRequest) (ScheduleSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := c.scheduler.Plan(
		model.ProcessingRequirements{Workloads: req.Workloads},
		req.Config,
		req.Policy,
	)
	if err != nil {
		return ScheduleSummary{}, err
	}

	runID := uuid.NewString()
	run := model.SchedulingRun{
		VersionedRecord: storage.Stamp(),
		ID:              runID,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339Nano),
		TaskCount:       len(result.Tasks),
		Policy:          result.Policy,
		Schedulable:     result.Analysis.Schedulable,
		Utilization:     result.Analysis.Utilization,
	}
	if err := c.store.SaveSchedulingRun(ctx, run); err != nil {
		return ScheduleSummary{}, fmt.Errorf("persist scheduling run: %w", err)
	}

	return ScheduleSummary{RunID: runID, Result: result}, nil
}

// OptimizeEnergy measures the current network's power draw, applies the
// worthwhile strategies and persists a report. It requires an initialized
// network to measure.
func (c *Client) OptimizeEnergy(ctx context.Context, req OptimizeRequest) (OptimizeSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.net == nil {
		return OptimizeSummary{}, snn.ErrNotInitialized
	}

	result, measurement, err := c.optimizer.Optimize(c.net.Stats(), req.Config)
	if err != nil {
		return OptimizeSummary{}, err
	}

	runID := uuid.NewString()
	report := model.EnergyReport{
		VersionedRecord: storage.Stamp(),
		ID:              runID,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339Nano),
		TotalPower:      measurement.TotalPower,
		Savings:         result.EnergySavings,
		Strategies:      append([]string(nil), result.Strategies...),
	}
	if err := c.store.SaveEnergyReport(ctx, report); err != nil {
		return OptimizeSummary{}, fmt.Errorf("persist energy report: %w", err)
	}

	return OptimizeSummary{RunID: runID, Measurement: measurement, Result: result}, nil
}

// MonitorDeadlines forwards the executing set to the scheduler's monitor.
func (c *Client) MonitorDeadlines(_ context.Context, executing []model.ExecutingTask) (model.DeadlineMonitoringResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scheduler.MonitorDeadlines(executing)
}

// Runs lists persisted processing runs, most recent first.
func (c *Client) Runs(ctx context.Context, req RunsRequest) ([]RunItem, error) {
	if req.Limit < 0 {
		return nil, errors.New("limit must be >= 0")
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	runs, err := c.store.ListProcessingRuns(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]RunItem, 0, len(runs))
	for _, r := range runs {
		out = append(out, RunItem{
			RunID:           r.ID,
			CreatedAtUTC:    r.CreatedAtUTC,
			InputSize:       r.InputSize,
			OutputSize:      r.OutputSize,
			SpikeCount:      r.SpikeCount,
			EfficiencyScore: r.EfficiencyScore,
			EnergyConsumed:  r.EnergyConsumed,
			LatencyMicros:   r.LatencyMicros,
		})
	}
	return out, nil
}

// Stats reports the current network's summary statistics.
func (c *Client) Stats(_ context.Context) (model.NetworkStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.net == nil {
		return model.NetworkStats{}, snn.ErrNotInitialized
	}
	return c.net.Stats(), nil
}
