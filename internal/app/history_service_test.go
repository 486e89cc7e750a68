package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/example/taskmeister/internal/ports/secondary"
)

func seedHistoryRecords(repo *mockAssignmentRepository) {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	repo.records = []*secondary.AssignmentRecord{
		{
			BatchID: "b1", WorkerName: "Ana", HouseName: "Northgate",
			Quantity: 2, Note: "spare keys", AssignmentDate: "2024-05-01",
			DateAssigned: base, EmailSent: true,
		},
		{
			BatchID: "b2", WorkerName: "Bela", HouseName: "Aspen Court",
			Quantity: 1, AssignmentDate: "2024-05-02",
			DateAssigned: base.Add(time.Hour), EmailSent: false,
		},
	}
}

func TestHistoryList_MostRecentFirst(t *testing.T) {
	repo := newMockAssignmentRepository()
	seedHistoryRecords(repo)
	service := NewHistoryService(repo)

	rows, err := service.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].WorkerName != "Bela" || rows[1].WorkerName != "Ana" {
		t.Errorf("expected most recent record first, got %s then %s", rows[0].WorkerName, rows[1].WorkerName)
	}
}

func TestHistoryList_FormatsDatesAndStatus(t *testing.T) {
	repo := newMockAssignmentRepository()
	seedHistoryRecords(repo)
	service := NewHistoryService(repo)

	rows, err := service.List(context.Background(), "ana")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.AssignmentDate != "01.05.2024" {
		t.Errorf("expected assignment date 01.05.2024, got %s", row.AssignmentDate)
	}
	if row.RecordDate != "01.05.2024 08:00" {
		t.Errorf("expected record date 01.05.2024 08:00, got %s", row.RecordDate)
	}
	if row.Status != "Delivered" {
		t.Errorf("expected status Delivered, got %s", row.Status)
	}
}

func TestHistoryList_FilterMatchesAnyField(t *testing.T) {
	repo := newMockAssignmentRepository()
	seedHistoryRecords(repo)
	service := NewHistoryService(repo)

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{name: "worker name case-insensitive", filter: "BELA", want: 1},
		{name: "house name substring", filter: "north", want: 1},
		{name: "note substring", filter: "keys", want: 1},
		{name: "no match", filter: "zzz", want: 0},
		{name: "empty matches all", filter: "", want: 2},
		{name: "whitespace matches all", filter: "   ", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := service.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(rows) != tt.want {
				t.Errorf("filter %q: expected %d rows, got %d", tt.filter, tt.want, len(rows))
			}
		})
	}
}

func TestHistoryList_PendingStatus(t *testing.T) {
	repo := newMockAssignmentRepository()
	seedHistoryRecords(repo)
	service := NewHistoryService(repo)

	rows, err := service.List(context.Background(), "bela")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Status != "Pending" {
		t.Errorf("expected status Pending, got %s", rows[0].Status)
	}
}

func TestHistoryExport_MirrorsList(t *testing.T) {
	repo := newMockAssignmentRepository()
	seedHistoryRecords(repo)
	service := NewHistoryService(repo)

	var buf bytes.Buffer
	count, err := service.Export(context.Background(), &buf, "")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	rows, err := service.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if count != len(rows) {
		t.Errorf("export count %d does not match list count %d", count, len(rows))
	}

	parsed, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}
	if len(parsed) != count+1 {
		t.Fatalf("expected header plus %d rows, got %d lines", count, len(parsed))
	}

	header := parsed[0]
	wantHeader := []string{"Worker", "House", "Quantity", "Note", "Assignment Date", "Record Date", "Status"}
	for i, col := range wantHeader {
		if header[i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, header[i])
		}
	}

	first := parsed[1]
	if first[0] != rows[0].WorkerName || first[1] != rows[0].HouseName || first[6] != rows[0].Status {
		t.Errorf("export row does not mirror list row: %v vs %+v", first, rows[0])
	}
}

func TestHistoryExport_AppliesFilter(t *testing.T) {
	repo := newMockAssignmentRepository()
	seedHistoryRecords(repo)
	service := NewHistoryService(repo)

	var buf bytes.Buffer
	count, err := service.Export(context.Background(), &buf, "northgate")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 exported row, got %d", count)
	}
}
