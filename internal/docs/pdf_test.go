package docs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"osas/clubport/internal/models"
)

func TestVerifyURL(t *testing.T) {
	got := VerifyURL("https://osas.example.edu/#", "utilization-request", "UR-2026-001")
	if !strings.Contains(got, "type=utilization-request") || !strings.Contains(got, "ref=UR-2026-001") {
		t.Fatalf("unexpected verify url: %s", got)
	}
}

func TestVerifyQRProducesPNG(t *testing.T) {
	png, err := VerifyQR("https://osas.example.edu/#/verify-utilization?ref=X", 128)
	if err != nil {
		t.Fatalf("qr encode failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("expected PNG magic bytes")
	}
}

func TestActivityDesignRendersPDF(t *testing.T) {
	r := NewRenderer("Kolehiyo ng Pantukan", "https://osas.example.edu/#")

	pdf, err := r.ActivityDesign(&models.ActivityDesign{
		ID:             1,
		ReferenceCode:  "AD-2026-014",
		NameOfActivity: "Leadership Training Seminar",
		Venue:          "Gymnasium",
		Date:           "2026-09-12",
		Budget:         5000,
		Status:         "approved",
	}, "Supreme Student Government")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("expected PDF header")
	}
	if len(pdf) < 1000 {
		t.Fatalf("suspiciously small document: %d bytes", len(pdf))
	}
}

func TestLiquidationFundRendersExpenseTable(t *testing.T) {
	r := NewRenderer("Kolehiyo ng Pantukan", "https://osas.example.edu/#")

	expenses, _ := json.Marshal([]map[string]interface{}{
		{"item": "Venue rental", "amount": 1500.0},
		{"item": "Snacks", "amount": 800.5},
	})
	pdf, err := r.LiquidationFund(&models.LiquidationFund{
		ID:            2,
		ReferenceCode: "LF-2026-003",
		Expenses:      expenses,
		TotalAmount:   2300.5,
		Status:        "approved",
	}, "Math Club")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("expected PDF header")
	}
}

func TestUtilizationRequestRendersItemNames(t *testing.T) {
	r := NewRenderer("Kolehiyo ng Pantukan", "https://osas.example.edu/#")

	facilities, _ := json.Marshal([]map[string]interface{}{
		{"name": "AVR Hall"},
		{"name": "Sound System", "quantity": 2},
	})
	pdf, err := r.UtilizationRequest(&models.UtilizationRequest{
		ID:            3,
		ReferenceCode: "UR-2026-009",
		Facilities:    facilities,
		StartDate:     "2026-09-12",
		StartTime:     "08:00",
		EndDate:       "2026-09-12",
		EndTime:       "17:00",
		Status:        "pending",
	}, "Drama Guild")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("expected PDF header")
	}
}

func TestNamesFromItems(t *testing.T) {
	raw, _ := json.Marshal([]interface{}{
		"Court A",
		map[string]interface{}{"name": "Chairs", "quantity": 50},
	})
	got := namesFromItems(raw)
	if got != "Court A, Chairs x50" {
		t.Fatalf("unexpected flattening: %q", got)
	}
	if namesFromItems(nil) != "" {
		t.Fatal("empty input must flatten to empty string")
	}
}
