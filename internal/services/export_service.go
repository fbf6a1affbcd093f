package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lfl-logistics/onboarding-service/internal/models"
	"github.com/lfl-logistics/onboarding-service/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

var carrierExportHeader = []interface{}{
	"ID", "Legal Name", "DBA Name", "DOT Number", "MC Number", "Contact Name",
	"Contact Email", "Contact Phone", "City", "State", "Equipment Types",
	"Documents Filled", "Status", "Registered At",
}

var shipperExportHeader = []interface{}{
	"ID", "Legal Name", "DBA Name", "Commodity Type", "Monthly Volume",
	"Contact Name", "Contact Email", "Contact Phone", "City", "State",
	"Documents Filled", "Status", "Registered At",
}

// ExportAccountsXLSX builds a workbook with a Carriers sheet and a Shippers
// sheet covering every registered account.
func (s *exportService) ExportAccountsXLSX(ctx context.Context) ([]byte, string, error) {
	carriers, _, err := s.repo.Carrier().List(ctx, nil, repositories.CarrierFilters{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list carriers for export: %w", err)
	}

	shippers, _, err := s.repo.Shipper().List(ctx, nil, repositories.ShipperFilters{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list shippers for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeCarrierSheet(f, carriers); err != nil {
		return nil, "", err
	}
	if err := s.writeShipperSheet(f, shippers); err != nil {
		return nil, "", err
	}

	// Drop the default sheet left over from NewFile
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	fileName := fmt.Sprintf("onboarding-export-%s.xlsx", time.Now().Format("2006-01-02"))
	s.logger.Info("Export generated", "file_name", fileName, "carriers", len(carriers), "shippers", len(shippers))

	return buf.Bytes(), fileName, nil
}

func (s *exportService) writeCarrierSheet(f *excelize.File, carriers []*models.CarrierProfile) error {
	const sheet = "Carriers"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create carrier sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &carrierExportHeader); err != nil {
		return fmt.Errorf("failed to write carrier header: %w", err)
	}

	for i, c := range carriers {
		docs := c.Documents.Data()
		row := []interface{}{
			c.ID, c.LegalName, c.DBAName, c.DOTNumber, c.MCNumber, c.ContactName,
			c.ContactEmail, c.ContactPhone, c.City, c.State,
			strings.Join(c.EquipmentTypes, ", "),
			fmt.Sprintf("%d/%d", docs.FilledCount(), len(models.CarrierDocumentSlots)),
			string(c.Status), c.CreatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute carrier row cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write carrier row: %w", err)
		}
	}

	return nil
}

func (s *exportService) writeShipperSheet(f *excelize.File, shippers []*models.ShipperProfile) error {
	const sheet = "Shippers"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create shipper sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &shipperExportHeader); err != nil {
		return fmt.Errorf("failed to write shipper header: %w", err)
	}

	for i, sh := range shippers {
		docs := sh.Documents.Data()
		row := []interface{}{
			sh.ID, sh.LegalName, sh.DBAName, sh.CommodityType, sh.MonthlyVolume,
			sh.ContactName, sh.ContactEmail, sh.ContactPhone, sh.City, sh.State,
			fmt.Sprintf("%d/%d", docs.FilledCount(), len(models.ShipperDocumentSlots)),
			string(sh.Status), sh.CreatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute shipper row cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write shipper row: %w", err)
		}
	}

	return nil
}
