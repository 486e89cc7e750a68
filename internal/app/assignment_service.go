package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/taskmeister/internal/core/assignment"
	"github.com/example/taskmeister/internal/ports/primary"
	"github.com/example/taskmeister/internal/ports/secondary"
)

// AssignmentServiceImpl implements the AssignmentService interface. It is
// the sole enforcement point of the single-date exclusivity invariant:
// every commit re-derives availability and refuses houses that already
// carry a delivered record for the date.
type AssignmentServiceImpl struct {
	workerRepo secondary.WorkerRepository
	houseRepo  secondary.HouseRepository
	assignRepo secondary.AssignmentRepository
	notifier   secondary.Notifier
	log        *zap.Logger
}

// NewAssignmentService creates a new AssignmentService with injected
// dependencies.
func NewAssignmentService(
	workerRepo secondary.WorkerRepository,
	houseRepo secondary.HouseRepository,
	assignRepo secondary.AssignmentRepository,
	notifier secondary.Notifier,
	log *zap.Logger,
) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{
		workerRepo: workerRepo,
		houseRepo:  houseRepo,
		assignRepo: assignRepo,
		notifier:   notifier,
		log:        log,
	}
}

// AvailableHouses returns the houses with no delivered assignment for the
// given date, preserving the name ordering of the house list.
func (s *AssignmentServiceImpl) AvailableHouses(ctx context.Context, date string) ([]*primary.House, error) {
	if _, err := time.Parse(assignment.DateLayout, date); err != nil {
		return nil, &primary.ValidationError{Reason: fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", date)}
	}

	houses, err := s.houseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}

	assignedIDs, err := s.assignRepo.AssignedHouseIDs(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load assigned houses: %w", err)
	}

	assigned := make(map[int64]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = true
	}

	available := make([]*primary.House, 0, len(houses))
	for _, h := range houses {
		if assigned[h.ID] {
			continue
		}
		available = append(available, &primary.House{ID: h.ID, Name: h.Name})
	}

	return available, nil
}

// Commit assigns the selected houses to one worker for one date. Records
// are written pending, the notification goes out once for the whole
// batch, and only a confirmed send flips the batch to delivered. On
// notification failure the receipt is returned together with a
// *primary.NotificationError so the caller can offer a resend.
func (s *AssignmentServiceImpl) Commit(ctx context.Context, req primary.CommitRequest) (*primary.Receipt, error) {
	selections := make([]assignment.SelectionInput, len(req.Selections))
	for i, sel := range req.Selections {
		selections[i] = assignment.SelectionInput{HouseID: sel.HouseID, Quantity: sel.Quantity}
	}

	guard := assignment.CanCommit(assignment.CommitContext{
		WorkerID:   req.WorkerID,
		Date:       req.Date,
		Selections: selections,
	})
	if !guard.Allowed {
		return nil, &primary.ValidationError{Reason: guard.Reason}
	}

	worker, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}

	houses, err := s.houseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	houseNames := make(map[int64]string, len(houses))
	for _, h := range houses {
		houseNames[h.ID] = h.Name
	}

	assignedIDs, err := s.assignRepo.AssignedHouseIDs(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load assigned houses: %w", err)
	}
	assigned := make(map[int64]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = true
	}

	for _, sel := range req.Selections {
		name, ok := houseNames[sel.HouseID]
		if !ok {
			return nil, &primary.ValidationError{Reason: fmt.Sprintf("house %d not found", sel.HouseID)}
		}
		if assigned[sel.HouseID] {
			return nil, &primary.ValidationError{
				Reason: fmt.Sprintf("house %s already has a delivered assignment for %s", name, req.Date),
			}
		}
	}

	batchID := uuid.NewString()

	records := make([]*secondary.AssignmentRecord, len(req.Selections))
	for i, sel := range req.Selections {
		records[i] = &secondary.AssignmentRecord{
			BatchID:        batchID,
			WorkerID:       worker.ID,
			HouseID:        sel.HouseID,
			WorkerName:     worker.Name,
			HouseName:      houseNames[sel.HouseID],
			Quantity:       sel.Quantity,
			Note:           sel.Note,
			AssignmentDate: req.Date,
			EmailSent:      false,
		}
	}

	if err := s.assignRepo.CreateBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save assignments: %w", err)
	}

	receipt := &primary.Receipt{
		BatchID:       batchID,
		WorkerName:    worker.Name,
		WorkerEmail:   worker.Email,
		Date:          req.Date,
		DateFormatted: assignment.FormatDate(req.Date),
		Lines:         make([]primary.ReceiptLine, len(records)),
	}
	for i, r := range records {
		receipt.Lines[i] = primary.ReceiptLine{HouseName: r.HouseName, Quantity: r.Quantity, Note: r.Note}
	}

	return s.deliver(ctx, receipt)
}

// Resend re-sends the notification for a pending batch and marks it
// delivered on success.
func (s *AssignmentServiceImpl) Resend(ctx context.Context, batchID string) (*primary.Receipt, error) {
	records, err := s.assignRepo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch: %w", err)
	}
	if len(records) == 0 {
		return nil, &primary.ValidationError{Reason: fmt.Sprintf("batch %s not found", batchID)}
	}

	pending := false
	for _, r := range records {
		if !r.EmailSent {
			pending = true
			break
		}
	}
	if !pending {
		return nil, &primary.ValidationError{Reason: fmt.Sprintf("batch %s is already delivered", batchID)}
	}

	// The snapshot has no contact address, so a resend needs the worker
	// row to still exist.
	worker, err := s.workerRepo.GetByID(ctx, records[0].WorkerID)
	if err != nil {
		return nil, fmt.Errorf("cannot resend, worker no longer exists: %w", err)
	}

	receipt := &primary.Receipt{
		BatchID:       batchID,
		WorkerName:    worker.Name,
		WorkerEmail:   worker.Email,
		Date:          records[0].AssignmentDate,
		DateFormatted: assignment.FormatDate(records[0].AssignmentDate),
		Lines:         make([]primary.ReceiptLine, len(records)),
	}
	for i, r := range records {
		receipt.Lines[i] = primary.ReceiptLine{HouseName: r.HouseName, Quantity: r.Quantity, Note: r.Note}
	}

	return s.deliver(ctx, receipt)
}

// deliver sends the batch notification and flips the delivery flag only
// after the send is confirmed.
func (s *AssignmentServiceImpl) deliver(ctx context.Context, receipt *primary.Receipt) (*primary.Receipt, error) {
	lines := make([]assignment.Line, len(receipt.Lines))
	for i, l := range receipt.Lines {
		lines[i] = assignment.Line{HouseName: l.HouseName, Quantity: l.Quantity, Note: l.Note}
	}

	subject := assignment.Subject(receipt.DateFormatted)
	body := assignment.Body(receipt.WorkerName, lines, receipt.DateFormatted)

	if err := s.notifier.Send(ctx, receipt.WorkerEmail, subject, body); err != nil {
		s.log.Warn("notification failed, batch stays pending",
			zap.String("batch_id", receipt.BatchID),
			zap.String("recipient", receipt.WorkerEmail),
			zap.Error(err))
		return receipt, &primary.NotificationError{BatchID: receipt.BatchID, Err: err}
	}

	if err := s.assignRepo.MarkBatchDelivered(ctx, receipt.BatchID); err != nil {
		// The mail went out but the flag flip failed: the batch reads as
		// pending and the houses stay available. Surface it loudly.
		s.log.Error("delivered batch could not be marked",
			zap.String("batch_id", receipt.BatchID),
			zap.Error(err))
		return receipt, fmt.Errorf("notification sent but batch %s could not be marked delivered: %w", receipt.BatchID, err)
	}

	receipt.Delivered = true
	s.log.Info("batch committed",
		zap.String("batch_id", receipt.BatchID),
		zap.String("worker", receipt.WorkerName),
		zap.String("date", receipt.Date),
		zap.Int("houses", len(receipt.Lines)))

	return receipt, nil
}

// Ensure AssignmentServiceImpl implements the interface
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)
