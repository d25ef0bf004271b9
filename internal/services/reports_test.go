package services

import (
	"context"
	"testing"

	"events-marketplace/internal/models"
	"events-marketplace/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	events []*repositories.EventSalesRow
	zones  map[int][]*repositories.ZoneSalesRow
}

func (r *stubReportRepo) EventSales(ctx context.Context) ([]*repositories.EventSalesRow, error) {
	return r.events, nil
}

func (r *stubReportRepo) ZoneSales(ctx context.Context, eventID int) ([]*repositories.ZoneSalesRow, error) {
	return r.zones[eventID], nil
}

func TestReportService_SalesReport(t *testing.T) {
	repo := &stubReportRepo{
		events: []*repositories.EventSalesRow{
			{EventID: 1, EventTitle: "Rock Fest", OrderCount: 2, TicketsSold: 5, Revenue: decimal.NewFromInt(400)},
			{EventID: 2, EventTitle: "Jazz Night", OrderCount: 0, TicketsSold: 0, Revenue: decimal.Zero},
		},
		zones: map[int][]*repositories.ZoneSalesRow{
			1: {
				{ZoneID: 10, ZoneName: "VIP", Capacity: 50, Purchased: 2, Revenue: decimal.NewFromInt(300)},
				{ZoneID: 11, ZoneName: "General", Capacity: 200, Purchased: 3, Revenue: decimal.NewFromInt(100)},
			},
		},
	}
	service := NewReportService(repo, &memAuditRepo{})

	report, err := service.SalesReport(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "Rock Fest", report[0].EventTitle)
	require.Len(t, report[0].Zones, 2)
	assert.Equal(t, "VIP", report[0].Zones[0].ZoneName)
	assert.True(t, report[0].Revenue.Equal(decimal.NewFromInt(400)))

	assert.Empty(t, report[1].Zones, "an event without sales still appears, with no zone rows")
}

func TestReportService_ActionReport(t *testing.T) {
	audit := &memAuditRepo{}
	_, err := audit.Create(context.Background(), &models.AuditLogCreateRequest{
		AdminUserID: 9,
		Action:      models.AuditActionEventApprove,
		EventID:     1,
		Details:     "event \"Rock Fest\" (organizer 3)",
	})
	require.NoError(t, err)

	service := NewReportService(&stubReportRepo{}, audit)

	report, err := service.ActionReport(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, models.AuditActionEventApprove, report.Entries[0].Action)
}
