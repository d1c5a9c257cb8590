package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Startup        bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	startup        bool
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

type registeredSystem struct {
	system System
	stats  *systemStatsInternal
}

// Scheduler runs startup systems once, then update systems every frame, in registration order.
// Commands queued by a stage are flushed before the next stage starts.
type Scheduler struct {
	storage *Storage
	startup []registeredSystem
	systems []registeredSystem
	started bool
	frames  int64
}

var queryType = reflect.TypeFor[Query]()

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// RegisterStartup adds a system that runs exactly once, before the first update stage.
func (s *Scheduler) RegisterStartup(system System) {
	s.startup = append(s.startup, s.prepare(system, true))
}

// Register adds a system to the per-frame update stage and initializes its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, s.prepare(system, false))
}

func (s *Scheduler) prepare(system System, startup bool) registeredSystem {
	s.initializeFields(system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	return registeredSystem{
		system: system,
		stats: &systemStatsInternal{
			name:        systemType.Name(),
			startup:     startup,
			minDuration: time.Duration(1<<63 - 1),
		},
	}
}

func (s *Scheduler) initializeFields(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		if field.Type() == queryType {
			filter, err := ParseFilter(fieldType.Tag.Get("ecs"))
			if err != nil {
				panic("invalid ecs tag on Query field " + fieldType.Name + ": " + err.Error())
			}
			field.Addr().Interface().(*Query).Init(s.storage, filter)
			continue
		}

		if strings.HasPrefix(field.Type().Name(), "Singleton[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on Singleton field: " + fieldType.Name)
			}

			initMethod.Call([]reflect.Value{
				reflect.ValueOf(s.storage),
			})
		}
	}
}

func (s *Scheduler) runStage(systems []registeredSystem, dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	for _, rs := range systems {
		start := time.Now()
		rs.system.Execute(frame)
		rs.stats.record(time.Since(start))
	}

	frame.Commands.Flush(s.storage)
}

// Once executes one frame. The first call runs the startup stage before the update stage.
func (s *Scheduler) Once(dt float64) {
	if !s.started {
		s.started = true
		s.runStage(s.startup, 0)
	}

	s.runStage(s.systems, dt)
	s.frames++
}

// Started reports whether the startup stage has run.
func (s *Scheduler) Started() bool {
	return s.started
}

// Run executes frames at the given interval until the context is cancelled.
// The delta time passed to systems is the measured time between ticks.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution. Startup systems are listed first.
func (s *Scheduler) GetStats() *SchedulerStats {
	all := make([]registeredSystem, 0, len(s.startup)+len(s.systems))
	all = append(all, s.startup...)
	all = append(all, s.systems...)

	stats := &SchedulerStats{
		SystemCount: len(all),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(all)),
	}

	var totalExecs int64
	for i, rs := range all {
		internal := rs.stats
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Startup:        internal.startup,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
