package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/t77yq/alerthub/internal/model"
	"github.com/t77yq/alerthub/internal/storage"
)

// DefaultStorageKey is the key under which the alert collection is
// persisted when no other key is configured.
const DefaultStorageKey = "financial_alerts"

// Update describes a partial modification of an alert. Nil fields are
// left untouched; a non-nil Config replaces the whole config variant.
type Update struct {
	Name     *string
	IsActive *bool
	Config   model.AlertConfig
}

// AlertStore is the single source of truth for the alert collection.
// All reads and writes pass through it. Mutations apply to memory
// immediately and are persisted in the background: a coalescing
// persister goroutine serializes the whole current collection into the
// storage slot, so back-to-back mutations collapse into one write and
// the latest snapshot always wins. Storage failures never propagate to
// callers; the in-memory state stays authoritative.
type AlertStore struct {
	logger *zap.Logger
	kv     storage.KV
	key    string

	mu      sync.RWMutex
	alerts  []model.Alert
	loading bool
	lastErr error
	query   string

	dirty     chan struct{}
	quit      chan struct{}
	persisted chan struct{}
	closeOnce sync.Once
}

// NewAlertStore creates an alert store backed by the given key-value
// slot and starts its persister. Call Load before serving reads and
// Close on shutdown.
func NewAlertStore(logger *zap.Logger, kv storage.KV, key string) *AlertStore {
	if key == "" {
		key = DefaultStorageKey
	}
	s := &AlertStore{
		logger:    logger,
		kv:        kv,
		key:       key,
		loading:   true,
		dirty:     make(chan struct{}, 1),
		quit:      make(chan struct{}),
		persisted: make(chan struct{}),
	}
	go s.persistLoop()
	return s
}

// Load reads the persisted collection from storage. On first run the
// seed dataset is adopted and written back immediately. A read or
// decode failure is logged, surfaced via Err, and answered with the
// seed dataset so consumers are never left without data. Load never
// returns an error; the loading flag clears on every path.
func (s *AlertStore) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	value, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("Failed to load alerts", zap.String("key", s.key), zap.Error(err))
		s.adopt(seedAlerts(), fmt.Errorf("failed to load alerts: %w", err))
		return
	}

	if !ok {
		// First run: seed and persist right away.
		s.adopt(seedAlerts(), nil)
		if err := s.Flush(ctx); err != nil {
			s.logger.Error("Failed to persist seed alerts", zap.Error(err))
		}
		return
	}

	var alerts []model.Alert
	if err := json.Unmarshal([]byte(value), &alerts); err != nil {
		s.logger.Error("Failed to decode stored alerts", zap.String("key", s.key), zap.Error(err))
		s.adopt(seedAlerts(), fmt.Errorf("failed to load alerts: %w", err))
		return
	}

	s.adopt(alerts, nil)
	s.logger.Info("Alerts loaded", zap.Int("count", len(alerts)))
}

// Refresh reloads the collection from storage, discarding in-memory state
func (s *AlertStore) Refresh(ctx context.Context) {
	s.Load(ctx)
}

func (s *AlertStore) adopt(alerts []model.Alert, err error) {
	s.mu.Lock()
	s.alerts = alerts
	s.lastErr = err
	s.mu.Unlock()
}

// Add assigns a fresh id and creation timestamps to the draft, prepends
// it to the collection, and schedules a persist. No validation happens
// here; validating drafts is the caller's concern. The stored alert is
// returned.
func (s *AlertStore) Add(draft model.Alert) model.Alert {
	alert := draft.Clone()
	now := time.Now().UTC()
	alert.ID = uuid.New().String()
	alert.CreatedAt = now
	alert.UpdatedAt = now

	s.mu.Lock()
	s.alerts = append([]model.Alert{alert}, s.alerts...)
	s.mu.Unlock()
	s.markDirty()

	s.logger.Info("Alert added",
		zap.String("alert_id", alert.ID),
		zap.String("type", string(alert.Type)),
		zap.String("name", alert.Name))

	return alert.Clone()
}

// UpdateAlert merges the given fields into the alert matching id and
// refreshes its update timestamp. Unknown ids are ignored.
func (s *AlertStore) UpdateAlert(id string, update Update) {
	s.mu.Lock()
	updated := false
	for i := range s.alerts {
		if s.alerts[i].ID != id {
			continue
		}
		alert := s.alerts[i]
		if update.Name != nil {
			alert.Name = *update.Name
		}
		if update.IsActive != nil {
			alert.IsActive = *update.IsActive
		}
		if update.Config != nil {
			alert.Config = update.Config
		}
		alert.UpdatedAt = time.Now().UTC()
		s.alerts[i] = alert.Clone()
		updated = true
		break
	}
	s.mu.Unlock()

	if updated {
		s.markDirty()
		s.logger.Info("Alert updated", zap.String("alert_id", id))
	}
}

// Delete removes the alert matching id. Unknown ids are ignored.
func (s *AlertStore) Delete(id string) {
	s.mu.Lock()
	deleted := false
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			deleted = true
			break
		}
	}
	s.mu.Unlock()

	if deleted {
		s.markDirty()
		s.logger.Info("Alert deleted", zap.String("alert_id", id))
	}
}

// ToggleActive flips the active flag of the alert matching id and
// refreshes its update timestamp. Unknown ids are ignored.
func (s *AlertStore) ToggleActive(id string) {
	s.mu.Lock()
	toggled := false
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].IsActive = !s.alerts[i].IsActive
			s.alerts[i].UpdatedAt = time.Now().UTC()
			toggled = true
			break
		}
	}
	s.mu.Unlock()

	if toggled {
		s.markDirty()
		s.logger.Info("Alert toggled", zap.String("alert_id", id))
	}
}

// Duplicate clones the alert matching id under a fresh identity. The
// copy gets " (Copy)" appended to its name, new timestamps independent
// of the original, and a deep-copied config, and is prepended to the
// collection. The second return value reports whether id was found.
func (s *AlertStore) Duplicate(id string) (model.Alert, bool) {
	s.mu.Lock()
	var clone model.Alert
	found := false
	for i := range s.alerts {
		if s.alerts[i].ID != id {
			continue
		}
		clone = s.alerts[i].Clone()
		now := time.Now().UTC()
		clone.ID = uuid.New().String()
		clone.Name = clone.Name + " (Copy)"
		clone.CreatedAt = now
		clone.UpdatedAt = now
		s.alerts = append([]model.Alert{clone}, s.alerts...)
		found = true
		break
	}
	s.mu.Unlock()

	if !found {
		return model.Alert{}, false
	}

	s.markDirty()
	s.logger.Info("Alert duplicated",
		zap.String("source_id", id),
		zap.String("alert_id", clone.ID))

	return clone.Clone(), true
}

// GetByID returns a copy of the alert matching id. No side effects.
func (s *AlertStore) GetByID(id string) (model.Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			return s.alerts[i].Clone(), true
		}
	}
	return model.Alert{}, false
}

// CreateDraft returns a new alert of the given type with the default
// configuration. The draft is not added to the store; callers hand it
// to Add once they are done editing.
func (s *AlertStore) CreateDraft(alertType model.AlertType, name string) model.Alert {
	return model.NewAlert(alertType, name)
}

// Alerts returns a snapshot copy of the full collection, newest first
func (s *AlertStore) Alerts() []model.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAlerts(s.alerts)
}

// Loading reports whether an initial load is in progress
func (s *AlertStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the load-time error state, if any. Persist failures are
// logged only and never show up here.
func (s *AlertStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// SetSearchQuery sets the free-text query used by Filtered
func (s *AlertStore) SetSearchQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
}

// SearchQuery returns the current free-text query
func (s *AlertStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Filtered returns the collection filtered by the current search query
func (s *AlertStore) Filtered() []model.Alert {
	s.mu.RLock()
	snapshot := cloneAlerts(s.alerts)
	query := s.query
	s.mu.RUnlock()
	return Filter(snapshot, query)
}

// Filter returns the alerts whose name or type contains query
// case-insensitively. An empty or whitespace-only query returns the
// input unchanged. The result is recomputed from its inputs alone.
func Filter(alerts []model.Alert, query string) []model.Alert {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return alerts
	}
	matched := make([]model.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if strings.Contains(strings.ToLower(alert.Name), q) ||
			strings.Contains(strings.ToLower(string(alert.Type)), q) {
			matched = append(matched, alert)
		}
	}
	return matched
}

// Flush serializes the current collection and writes it to the storage
// slot synchronously. The persister uses it after every mutation signal;
// callers only need it on shutdown or in tests.
func (s *AlertStore) Flush(ctx context.Context) error {
	s.mu.RLock()
	data, err := json.Marshal(s.alerts)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode alerts: %w", err)
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist alerts: %w", err)
	}
	return nil
}

// Close stops the persister and flushes any pending state
func (s *AlertStore) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.persisted
		if err := s.Flush(context.Background()); err != nil {
			s.logger.Error("Failed to flush alerts on close", zap.Error(err))
		}
	})
}

// markDirty signals the persister. The buffered channel coalesces
// signals issued while a persist is already pending.
func (s *AlertStore) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *AlertStore) persistLoop() {
	defer close(s.persisted)
	for {
		select {
		case <-s.quit:
			return
		case <-s.dirty:
			if err := s.Flush(context.Background()); err != nil {
				// Memory already moved on; accepted divergence until
				// the next successful persist.
				s.logger.Error("Failed to persist alerts", zap.Error(err))
			}
		}
	}
}

func cloneAlerts(alerts []model.Alert) []model.Alert {
	cloned := make([]model.Alert, len(alerts))
	for i := range alerts {
		cloned[i] = alerts[i].Clone()
	}
	return cloned
}
