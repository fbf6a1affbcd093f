package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lfl-logistics/onboarding-service/internal/models"
)

// ProfileAnalyzer enriches a new application with a short capability
// summary. The enrichment is advisory only: registration must succeed even
// when the analyzer fails.
type ProfileAnalyzer interface {
	AnalyzeCarrier(ctx context.Context, profile *models.CarrierProfile) (string, error)
	AnalyzeShipper(ctx context.Context, profile *models.ShipperProfile) (string, error)
}

// heuristicAnalyzer produces a rule-based summary from the submitted
// operations data. It stands in for the external analysis provider.
type heuristicAnalyzer struct{}

func NewHeuristicAnalyzer() ProfileAnalyzer {
	return &heuristicAnalyzer{}
}

func (a *heuristicAnalyzer) AnalyzeCarrier(ctx context.Context, profile *models.CarrierProfile) (string, error) {
	var parts []string

	if len(profile.EquipmentTypes) > 0 {
		parts = append(parts, fmt.Sprintf("Operates %s equipment", strings.Join(profile.EquipmentTypes, ", ")))
	}
	if len(profile.PreferredLanes) > 0 {
		parts = append(parts, fmt.Sprintf("preferred lanes: %s", strings.Join(profile.PreferredLanes, ", ")))
	}
	if profile.MCNumber != "" {
		parts = append(parts, fmt.Sprintf("interstate authority %s", profile.MCNumber))
	}

	if len(parts) == 0 {
		return "No operations data submitted", nil
	}

	return strings.Join(parts, "; "), nil
}

func (a *heuristicAnalyzer) AnalyzeShipper(ctx context.Context, profile *models.ShipperProfile) (string, error) {
	var parts []string

	if profile.CommodityType != "" {
		parts = append(parts, fmt.Sprintf("Ships %s", profile.CommodityType))
	}
	if profile.MonthlyVolume != "" {
		parts = append(parts, fmt.Sprintf("monthly volume %s", profile.MonthlyVolume))
	}
	if len(profile.PreferredEquipment) > 0 {
		parts = append(parts, fmt.Sprintf("needs %s equipment", strings.Join(profile.PreferredEquipment, ", ")))
	}

	if len(parts) == 0 {
		return "No shipping profile data submitted", nil
	}

	return strings.Join(parts, "; "), nil
}
