package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/taskmeister/internal/core/assignment"
	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/ports/secondary"
)

// csvHeader is the fixed export header. Export rows mirror List exactly,
// so the two can never disagree on count or field values.
var csvHeader = []string{"Worker", "House", "Quantity", "Note", "Assignment Date", "Record Date", "Status"}

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	assignRepo secondary.AssignmentRepository
}

// NewHistoryService creates a new HistoryService with injected
// dependencies.
func NewHistoryService(assignRepo secondary.AssignmentRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{assignRepo: assignRepo}
}

// List returns the audit trail, most recent record first. filter is a
// case-insensitive substring match on worker name, house name or note.
func (s *HistoryServiceImpl) List(ctx context.Context, filter string) ([]*primary.HistoryRow, error) {
	records, err := s.assignRepo.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filter))

	rows := make([]*primary.HistoryRow, 0, len(records))
	for _, r := range records {
		if needle != "" && !matchesFilter(r, needle) {
			continue
		}

		status := primary.StatusPending
		if r.EmailSent {
			status = primary.StatusDelivered
		}

		rows = append(rows, &primary.HistoryRow{
			BatchID:        r.BatchID,
			WorkerName:     r.WorkerName,
			HouseName:      r.HouseName,
			Quantity:       r.Quantity,
			Note:           r.Note,
			AssignmentDate: assignment.FormatDate(r.AssignmentDate),
			RecordDate:     assignment.FormatTimestamp(r.DateAssigned),
			Status:         status,
		})
	}

	return rows, nil
}

// Export writes the rows List would return for filter as CSV to w and
// reports the number of data rows written.
func (s *HistoryServiceImpl) Export(ctx context.Context, w io.Writer, filter string) (int, error) {
	rows, err := s.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.WorkerName,
			row.HouseName,
			strconv.Itoa(row.Quantity),
			row.Note,
			row.AssignmentDate,
			row.RecordDate,
			row.Status,
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}

	return len(rows), nil
}

// matchesFilter applies the OR-match across the three searchable fields.
func matchesFilter(r *secondary.HistoryRecord, needle string) bool {
	return strings.Contains(strings.ToLower(r.WorkerName), needle) ||
		strings.Contains(strings.ToLower(r.HouseName), needle) ||
		strings.Contains(strings.ToLower(r.Note), needle)
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
