package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/observability/metrics"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/observability/tracing"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/classifier"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/projector"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/recommend"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/registry"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/trend"
)

const (
	defaultFeedSize    = 6
	maxConcurrentReads = 8
)

type MapSize struct {
	Width  int
	Height int
}

type Service struct {
	registry   *registry.Registry
	source     domain.ReadingSource
	classifier *classifier.Classifier
	state      *State
	mapSize    MapSize
	feedSize   int

	cycleMetrics *metrics.CycleMetrics
	zoneGauges   *metrics.ZoneGauges
	recorder     domain.CycleRecorder
	publisher    domain.AlertPublisher
	now          func() time.Time

	cycleMu sync.Mutex
}

type Option func(*Service)

func WithCycleMetrics(m *metrics.CycleMetrics) Option {
	return func(s *Service) { s.cycleMetrics = m }
}

func WithZoneGauges(g *metrics.ZoneGauges) Option {
	return func(s *Service) { s.zoneGauges = g }
}

func WithRecorder(r domain.CycleRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithPublisher(p domain.AlertPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithFeedSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.feedSize = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(
	reg *registry.Registry,
	source domain.ReadingSource,
	cls *classifier.Classifier,
	state *State,
	mapSize MapSize,
	opts ...Option,
) *Service {
	s := &Service{
		registry:   reg,
		source:     source,
		classifier: cls,
		state:      state,
		mapSize:    mapSize,
		feedSize:   defaultFeedSize,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) State() *State {
	return s.state
}

func (s *Service) MapSize() MapSize {
	return s.mapSize
}

// Snapshot returns the latest snapshot, running a cycle if none exists yet.
func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if latest := s.state.Latest(); latest != nil {
		return latest, nil
	}
	return s.RunCycle(ctx)
}

type readResult struct {
	count int
	err   error
}

// RunCycle produces one snapshot. Cycles never overlap. While frozen the pinned
// snapshot is returned without reading, classifying or notifying.
func (s *Service) RunCycle(ctx context.Context) (*domain.Snapshot, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	if pinned, frozen := s.state.frozen(); frozen && pinned != nil {
		if s.cycleMetrics != nil {
			s.cycleMetrics.RecordCycle(ctx, domain.StatusFrozen, 0)
		}
		slog.DebugContext(ctx, "dashboard frozen, reusing pinned snapshot",
			slog.String("cycle_id", pinned.CycleID),
		)
		return pinned, nil
	}

	start := time.Now()
	cycleID := uuid.NewString()
	zones := s.registry.Zones()

	ctx, span := tracing.StartCycleSpan(ctx, cycleID, len(zones))
	defer span.End()

	results := s.readAll(ctx, zones)
	if err := ctx.Err(); err != nil {
		tracing.RecordCycleResult(span, 0, 0, 0, 0, err)
		return nil, fmt.Errorf("dashboard cycle %s: %w", cycleID, err)
	}

	now := s.now()
	snapshot := &domain.Snapshot{
		CycleID:     cycleID,
		GeneratedAt: now,
		Status:      domain.StatusLive,
		Rows:        make([]domain.ZoneRow, 0, len(zones)),
		Markers:     make([]domain.Marker, 0, len(zones)),
		MapWidth:    s.mapSize.Width,
		MapHeight:   s.mapSize.Height,
		Warnings:    []domain.Warning{},
	}

	var notified []domain.NotificationEntry
	records := make([]domain.ZoneReadingRecord, 0, len(zones))

	for i, zone := range zones {
		result := results[i]
		if result.err != nil {
			slog.WarnContext(ctx, "zone reading failed",
				slog.String("cycle_id", cycleID),
				slog.String("zone", zone.Name),
				slog.String("error", result.err.Error()),
			)
			if s.cycleMetrics != nil {
				s.cycleMetrics.RecordReadingFailure(ctx, zone.Name)
			}
			snapshot.Warnings = append(snapshot.Warnings, domain.Warning{
				Zone:    zone.Name,
				Code:    domain.WarningReadingFailed,
				Message: result.err.Error(),
			})
			continue
		}

		level := s.classifier.Classify(result.count)
		if s.cycleMetrics != nil {
			s.cycleMetrics.RecordReading(ctx, level.String())
		}

		obs, err := s.observe(ctx, zone.Name, result.count)
		if err != nil {
			slog.WarnContext(ctx, "trend history unavailable, reporting stable",
				slog.String("cycle_id", cycleID),
				slog.String("zone", zone.Name),
				slog.String("error", err.Error()),
			)
			if s.cycleMetrics != nil {
				s.cycleMetrics.RecordHistoryFailure(ctx)
			}
			snapshot.Warnings = append(snapshot.Warnings, domain.Warning{
				Zone:    zone.Name,
				Code:    domain.WarningHistoryFailed,
				Message: err.Error(),
			})
		}

		snapshot.Rows = append(snapshot.Rows, domain.ZoneRow{
			Zone:             zone.Name,
			Count:            result.count,
			Level:            level,
			LevelDisplay:     level.Display(),
			Trend:            obs.Trend,
			Recommendation:   recommend.Advise(level, obs.Trend),
			FirstObservation: obs.FirstObservation,
		})
		snapshot.TotalPeople += result.count

		if level.IsAlert() {
			snapshot.ZonesInAlert++
			if entry, ok := s.state.notifications.Record(zone.Name, level, now); ok {
				notified = append(notified, entry)
				if s.cycleMetrics != nil {
					s.cycleMetrics.RecordNotification(ctx, level.String())
				}
			}
		}

		marker := projector.Marker(zone, result.count, level, s.mapSize.Width, s.mapSize.Height)
		if marker.Fallback {
			snapshot.Warnings = append(snapshot.Warnings, domain.Warning{
				Zone:    zone.Name,
				Code:    domain.WarningMissingCoordinate,
				Message: "no registered coordinate, placed at map center",
			})
		}
		snapshot.Markers = append(snapshot.Markers, marker)

		records = append(records, domain.ZoneReadingRecord{
			CycleID:   cycleID,
			Zone:      zone.Name,
			Count:     result.count,
			Level:     level,
			Trend:     obs.Trend,
			Timestamp: now,
		})
	}

	snapshot.Notifications = s.state.notifications.RecentMessages(s.feedSize)
	snapshot.Action = ActionMessage(snapshot.ZonesInAlert)

	published := s.state.publish(snapshot)

	s.emit(ctx, snapshot, records, notified)

	if s.cycleMetrics != nil {
		s.cycleMetrics.RecordCycle(ctx, published.Status, time.Since(start))
	}
	tracing.RecordCycleResult(span, len(snapshot.Rows), snapshot.ZonesInAlert, len(notified), len(snapshot.Warnings), nil)

	slog.InfoContext(ctx, "dashboard cycle completed",
		slog.String("cycle_id", cycleID),
		slog.Int("rows", len(snapshot.Rows)),
		slog.Int("total_people", snapshot.TotalPeople),
		slog.Int("zones_in_alert", snapshot.ZonesInAlert),
		slog.Int("notified", len(notified)),
		slog.Int("warnings", len(snapshot.Warnings)),
		slog.Duration("duration", time.Since(start)),
	)

	return published, nil
}

// readAll fetches every zone concurrently. Each zone writes only its own slot.
func (s *Service) readAll(ctx context.Context, zones []domain.Zone) []readResult {
	results := make([]readResult, len(zones))

	var g errgroup.Group
	g.SetLimit(maxConcurrentReads)

	for i, zone := range zones {
		g.Go(func() error {
			readCtx, span := tracing.StartReadingSpan(ctx, zone.Name)
			defer span.End()

			count, err := s.source.Read(readCtx, zone)
			if err == nil && count < 0 {
				err = fmt.Errorf("%w: %d", domain.ErrNegativeReading, count)
			}
			tracing.RecordError(span, err)

			results[i] = readResult{count: count, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Service) observe(ctx context.Context, zone string, count int) (trend.Observation, error) {
	ctx, span := tracing.StartHistorySpan(ctx, "swap", zone)
	defer span.End()

	obs, err := s.state.tracker.Observe(ctx, zone, count)
	tracing.RecordError(span, err)

	return obs, err
}

// emit forwards a completed cycle to the optional sinks. Sink failures are
// logged and never fail the cycle.
func (s *Service) emit(ctx context.Context, snapshot *domain.Snapshot, records []domain.ZoneReadingRecord, notified []domain.NotificationEntry) {
	s.zoneGauges.Observe(snapshot)

	if s.recorder != nil && len(records) > 0 {
		if err := s.recorder.RecordReadings(ctx, records); err != nil {
			slog.WarnContext(ctx, "failed to record cycle readings",
				slog.String("cycle_id", snapshot.CycleID),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.publisher != nil && len(notified) > 0 {
		if err := s.publisher.Publish(ctx, notified); err != nil {
			slog.WarnContext(ctx, "failed to publish alerts",
				slog.String("cycle_id", snapshot.CycleID),
				slog.Int("count", len(notified)),
				slog.String("error", err.Error()),
			)
		}
	}
}

func ActionMessage(zonesInAlert int) string {
	if zonesInAlert > 0 {
		return fmt.Sprintf("Campus Alert Level: %d zones affected", zonesInAlert)
	}
	return "Campus operating normally"
}
