package storage

import (
	"context"
	"sync"

	"neuromorph/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	processing  map[string]model.ProcessingRun
	procOrder   []string
	scheduling  map[string]model.SchedulingRun
	energy      map[string]model.EnergyReport
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.processing = make(map[string]model.ProcessingRun)
	s.procOrder = nil
	s.scheduling = make(map[string]model.SchedulingRun)
	s.energy = make(map[string]model.EnergyReport)
	return nil
}

func (s *MemoryStore) SaveProcessingRun(_ context.Context, run model.ProcessingRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.processing[run.ID]; !ok {
		s.procOrder = append(s.procOrder, run.ID)
	}
	s.processing[run.ID] = run
	return nil
}

func (s *MemoryStore) GetProcessingRun(_ context.Context, id string) (model.ProcessingRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.processing[id]
	return run, ok, nil
}

// ListProcessingRuns returns the most recent runs first, up to limit.
func (s *MemoryStore) ListProcessingRuns(_ context.Context, limit int) ([]model.ProcessingRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var runs []model.ProcessingRun
	for i := len(s.procOrder) - 1; i >= 0 && (limit <= 0 || len(runs) < limit); i-- {
		runs = append(runs, s.processing[s.procOrder[i]])
	}
	return runs, nil
}

func (s *MemoryStore) SaveSchedulingRun(_ context.Context, run model.SchedulingRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduling[run.ID] = run
	return nil
}

func (s *MemoryStore) GetSchedulingRun(_ context.Context, id string) (model.SchedulingRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.scheduling[id]
	return run, ok, nil
}

func (s *MemoryStore) SaveEnergyReport(_ context.Context, report model.EnergyReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.energy[report.ID] = report
	return nil
}

func (s *MemoryStore) GetEnergyReport(_ context.Context, id string) (model.EnergyReport, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.energy[id]
	return report, ok, nil
}
