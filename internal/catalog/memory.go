package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used for tests and for running the
// service without a database. It starts empty; call SeedDefaults for the
// built-in catalog.
type MemoryStore struct {
	mu    sync.RWMutex
	crops map[uuid.UUID]*Crop
	order []uuid.UUID
	recs  map[uuid.UUID]*RecommendationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		crops: make(map[uuid.UUID]*Crop),
		recs:  make(map[uuid.UUID]*RecommendationRecord),
	}
}

// SeedDefaults loads the built-in reference crops.
func (m *MemoryStore) SeedDefaults() error {
	for _, crop := range SeedCrops() {
		if err := m.CreateCrop(context.Background(), crop); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) CreateCrop(_ context.Context, crop *Crop) error {
	if err := crop.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if crop.ID == uuid.Nil {
		crop.ID = uuid.New()
	}
	now := time.Now()
	crop.CreatedAt = now
	crop.UpdatedAt = now
	cp := *crop
	m.crops[crop.ID] = &cp
	m.order = append(m.order, crop.ID)
	return nil
}

func (m *MemoryStore) GetCrop(_ context.Context, id uuid.UUID) (*Crop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	crop, ok := m.crops[id]
	if !ok {
		return nil, nil
	}
	cp := *crop
	return &cp, nil
}

func (m *MemoryStore) ListCrops(_ context.Context, filter CropFilter) ([]*Crop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Crop
	for _, id := range m.order {
		crop, ok := m.crops[id]
		if !ok {
			continue
		}
		if filter.Season != "" && crop.Season != filter.Season {
			continue
		}
		if filter.SoilType != "" && !hasSoil(crop, filter.SoilType) {
			continue
		}
		cp := *crop
		out = append(out, &cp)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *MemoryStore) UpdateCrop(_ context.Context, crop *Crop) error {
	if err := crop.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.crops[crop.ID]
	if !ok {
		return ErrCropNotFound
	}
	crop.CreatedAt = existing.CreatedAt
	crop.UpdatedAt = time.Now()
	cp := *crop
	m.crops[crop.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteCrop(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.crops[id]; !ok {
		return ErrCropNotFound
	}
	delete(m.crops, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryStore) CreateRecommendation(_ context.Context, rec *RecommendationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	cp := *rec
	m.recs[rec.ID] = &cp
	return nil
}

func (m *MemoryStore) GetRecommendation(_ context.Context, id uuid.UUID) (*RecommendationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *MemoryStore) ListRecommendations(_ context.Context, limit int) ([]*RecommendationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*RecommendationRecord, 0, len(m.recs))
	for _, rec := range m.recs {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }

func hasSoil(crop *Crop, soil string) bool {
	for _, st := range crop.SuitableSoilTypes {
		if strings.EqualFold(st, soil) {
			return true
		}
	}
	return false
}
