package services

import (
	"context"

	"events-marketplace/internal/models"
	"events-marketplace/internal/repositories"
)

// EventSalesReport is the sales summary for one event, including the per-zone
// breakdown
type EventSalesReport struct {
	*repositories.EventSalesRow
	Zones []*repositories.ZoneSalesRow `json:"zones"`
}

// ActionReport is a page of the admin action log
type ActionReport struct {
	Entries []*models.AuditLog `json:"entries"`
	Total   int                `json:"total"`
}

// ReportService assembles the admin-facing sales and action reports
type ReportService struct {
	reportRepo ReportRepository
	auditRepo  AuditLogRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo ReportRepository, auditRepo AuditLogRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		auditRepo:  auditRepo,
	}
}

// SalesReport aggregates orders per event with a zone breakdown for each
func (s *ReportService) SalesReport(ctx context.Context) ([]*EventSalesReport, error) {
	rows, err := s.reportRepo.EventSales(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]*EventSalesReport, 0, len(rows))
	for _, row := range rows {
		zones, err := s.reportRepo.ZoneSales(ctx, row.EventID)
		if err != nil {
			return nil, err
		}
		report = append(report, &EventSalesReport{EventSalesRow: row, Zones: zones})
	}

	return report, nil
}

// ActionReport retrieves a page of recorded admin actions, newest first
func (s *ReportService) ActionReport(ctx context.Context, limit, offset int) (*ActionReport, error) {
	entries, total, err := s.auditRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &ActionReport{Entries: entries, Total: total}, nil
}
