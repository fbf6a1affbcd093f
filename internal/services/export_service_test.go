package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/lfl-logistics/onboarding-service/internal/events"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
	"github.com/lfl-logistics/onboarding-service/internal/validator"
)

func newExportFixture(t *testing.T) (ExportService, RegistrationService, repositories.Repository) {
	t.Helper()

	repo, db := newTestRepo(t)
	logger := newTestLogger()
	v := validator.New()
	auth := newTestAuth(repo, db)
	notifier := NewNotificationEventService(repo, events.NewMockEventPublisher(logger), logger, v)
	registration := NewRegistrationService(repo, db, logger, v, auth, NewHeuristicAnalyzer(), notifier, newTestCache(t))

	return NewExportService(repo, logger), registration, repo
}

func TestExportAccountsXLSX(t *testing.T) {
	export, registration, _ := newExportFixture(t)
	ctx := context.Background()

	if _, err := registration.RegisterCarrier(ctx, validCarrierRequest()); err != nil {
		t.Fatalf("carrier registration failed: %v", err)
	}
	if _, err := registration.RegisterShipper(ctx, validShipperRequest()); err != nil {
		t.Fatalf("shipper registration failed: %v", err)
	}

	data, fileName, err := export.ExportAccountsXLSX(ctx)
	if err != nil {
		t.Fatalf("ExportAccountsXLSX failed: %v", err)
	}

	if !strings.HasPrefix(fileName, "onboarding-export-") || !strings.HasSuffix(fileName, ".xlsx") {
		t.Errorf("unexpected file name: %s", fileName)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("export is not a readable workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Carriers", "Shippers"} {
		rows, err := f.GetRows(sheet)
		if err != nil {
			t.Fatalf("missing sheet %s: %v", sheet, err)
		}
		// Header row plus one account
		if len(rows) != 2 {
			t.Errorf("sheet %s: expected 2 rows, got %d", sheet, len(rows))
		}
	}

	carrierRows, _ := f.GetRows("Carriers")
	if carrierRows[1][1] != "Carolina Freight LLC" {
		t.Errorf("unexpected carrier legal name: %s", carrierRows[1][1])
	}
	if carrierRows[1][3] != "1234567" {
		t.Errorf("unexpected DOT number: %s", carrierRows[1][3])
	}
}

func TestExportAccountsXLSX_Empty(t *testing.T) {
	export, _, _ := newExportFixture(t)

	data, _, err := export.ExportAccountsXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportAccountsXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("export is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Carriers")
	if err != nil {
		t.Fatalf("missing carriers sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
