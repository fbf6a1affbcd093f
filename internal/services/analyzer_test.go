package services

import (
	"context"
	"strings"
	"testing"

	"gorm.io/datatypes"

	"github.com/lfl-logistics/onboarding-service/internal/models"
)

func TestAnalyzeCarrier(t *testing.T) {
	analyzer := NewHeuristicAnalyzer()
	ctx := context.Background()

	t.Run("full operations data", func(t *testing.T) {
		summary, err := analyzer.AnalyzeCarrier(ctx, &models.CarrierProfile{
			MCNumber:       "MC123456",
			EquipmentTypes: datatypes.NewJSONSlice([]string{"Dry Van", "Reefer"}),
			PreferredLanes: datatypes.NewJSONSlice([]string{"Southeast"}),
		})
		if err != nil {
			t.Fatalf("AnalyzeCarrier failed: %v", err)
		}
		for _, want := range []string{"Dry Van, Reefer", "Southeast", "MC123456"} {
			if !strings.Contains(summary, want) {
				t.Errorf("summary missing %q: %s", want, summary)
			}
		}
	})

	t.Run("empty profile", func(t *testing.T) {
		summary, err := analyzer.AnalyzeCarrier(ctx, &models.CarrierProfile{})
		if err != nil {
			t.Fatalf("AnalyzeCarrier failed: %v", err)
		}
		if summary != "No operations data submitted" {
			t.Errorf("unexpected summary: %s", summary)
		}
	})
}

func TestAnalyzeShipper(t *testing.T) {
	analyzer := NewHeuristicAnalyzer()
	ctx := context.Background()

	summary, err := analyzer.AnalyzeShipper(ctx, &models.ShipperProfile{
		CommodityType:      "Frozen Foods",
		MonthlyVolume:      "50-100 loads",
		PreferredEquipment: datatypes.NewJSONSlice([]string{"Reefer"}),
	})
	if err != nil {
		t.Fatalf("AnalyzeShipper failed: %v", err)
	}
	for _, want := range []string{"Frozen Foods", "50-100 loads", "Reefer"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q: %s", want, summary)
		}
	}

	empty, err := analyzer.AnalyzeShipper(ctx, &models.ShipperProfile{})
	if err != nil {
		t.Fatalf("AnalyzeShipper failed: %v", err)
	}
	if empty != "No shipping profile data submitted" {
		t.Errorf("unexpected summary: %s", empty)
	}
}
