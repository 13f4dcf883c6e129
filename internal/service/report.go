package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/P0n40/Shiftdailyreportapp/internal/ident"
	"github.com/P0n40/Shiftdailyreportapp/internal/kv"
	"github.com/P0n40/Shiftdailyreportapp/internal/model"
)

// ErrNotFound is returned when an operation targets a report id absent
// from storage.
var ErrNotFound = errors.New("report not found")

const reportPrefix = "report:"

func reportKey(id string) string { return reportPrefix + id }

// ReportService is the persistence gateway for report aggregates. It
// owns identity and timestamp assignment; stored values are JSON
// documents in the kv substrate.
type ReportService struct {
	store kv.Store

	// Now is swappable in tests.
	Now func() time.Time
}

func NewReportService(store kv.Store) *ReportService {
	return &ReportService{store: store, Now: time.Now}
}

// Create validates and cleans the draft, assigns a fresh id and
// timestamps, and stores the report. The stored record is returned.
func (s *ReportService) Create(ctx context.Context, draft model.Report) (*model.Report, error) {
	if err := model.ValidateDraft(&draft); err != nil {
		return nil, err
	}
	r := model.Clean(draft)
	r.ID = ident.New()
	now := s.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	buf, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	if err := s.store.Set(ctx, reportKey(r.ID), buf); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}
	return &r, nil
}

// Get returns the stored report or ErrNotFound.
func (s *ReportService) Get(ctx context.Context, id string) (*model.Report, error) {
	raw, ok, err := s.store.Get(ctx, reportKey(id))
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	var r model.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &r, nil
}

// List returns all stored reports ordered by date descending. Ties
// keep storage order. The corpus is small; a prefix scan plus sort is
// the intended implementation, and callers must not expect pagination.
func (s *ReportService) List(ctx context.Context) ([]model.Report, error) {
	values, err := s.store.ScanPrefix(ctx, reportPrefix)
	if err != nil {
		return nil, fmt.Errorf("scan reports: %w", err)
	}
	reports := []model.Report{}
	for _, v := range values {
		var r model.Report
		if err := json.Unmarshal(v, &r); err != nil {
			continue
		}
		if r.ID == "" {
			continue
		}
		reports = append(reports, r)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return model.ParseDate(reports[i].Date).After(model.ParseDate(reports[j].Date))
	})
	return reports, nil
}

// Update shallow-merges the patch onto the stored document: scalar
// fields are overwritten and any sub-collection present in the patch
// replaces the stored one wholesale. id and createdAt are pinned to
// their stored values even when forged in the patch; updatedAt is
// always reset. Patches are not re-validated. Concurrent updates are
// last-write-wins; no conflict is detected.
func (s *ReportService) Update(ctx context.Context, id string, patch map[string]any) (*model.Report, error) {
	raw, ok, err := s.store.Get(ctx, reportKey(id))
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	createdAt, hasCreatedAt := doc["createdAt"]
	for k, v := range patch {
		doc[k] = v
	}
	doc["id"] = id
	if hasCreatedAt {
		doc["createdAt"] = createdAt
	} else {
		delete(doc, "createdAt")
	}
	doc["updatedAt"] = s.Now().UTC().Format(time.RFC3339Nano)

	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	if err := s.store.Set(ctx, reportKey(id), buf); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}
	var r model.Report
	if err := json.Unmarshal(buf, &r); err != nil {
		return nil, fmt.Errorf("decode merged report: %w", err)
	}
	return &r, nil
}

// Delete removes the report unconditionally. Deleting an absent id is
// an idempotent success.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, reportKey(id)); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}
