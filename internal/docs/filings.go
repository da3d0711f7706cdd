package docs

import (
	"encoding/json"
	"fmt"

	"osas/clubport/internal/models"
)

// ActivityDesign renders an activity design into its printable form.
func (r *Renderer) ActivityDesign(d *models.ActivityDesign, clubName string) ([]byte, error) {
	pdf := r.newDoc("Activity Design", d.ReferenceCode)

	field(pdf, "Club", clubName)
	field(pdf, "Activity", d.NameOfActivity)
	field(pdf, "Venue", d.Venue)
	field(pdf, "Date", d.Date)
	field(pdf, "Rationale", d.Rationale)
	field(pdf, "Objectives", d.Objectives)
	field(pdf, "Source of Funds", d.SourceOfFunds)
	if d.Budget > 0 {
		field(pdf, "Budget", fmt.Sprintf("PHP %.2f", d.Budget))
	}
	field(pdf, "Status", d.Status)

	if err := r.qrBlock(pdf, "activity-design", d.ReferenceCode); err != nil {
		return nil, err
	}
	return r.output(pdf)
}

// UtilizationRequest renders a facility utilization request into its
// printable form.
func (r *Renderer) UtilizationRequest(u *models.UtilizationRequest, clubName string) ([]byte, error) {
	pdf := r.newDoc("Facility Utilization Request", u.ReferenceCode)

	field(pdf, "Club", clubName)
	if u.ActivityDesign != nil {
		field(pdf, "Activity", u.ActivityDesign.NameOfActivity)
	}
	field(pdf, "Start", joinDateTime(u.StartDate, u.StartTime))
	field(pdf, "End", joinDateTime(u.EndDate, u.EndTime))
	field(pdf, "Facilities", namesFromItems(u.Facilities))
	field(pdf, "Equipment", namesFromItems(u.EquipmentItems))
	field(pdf, "Status", u.Status)

	if err := r.qrBlock(pdf, "utilization-request", u.ReferenceCode); err != nil {
		return nil, err
	}
	return r.output(pdf)
}

// LiquidationFund renders a liquidation report into its printable form,
// including the itemized expense table.
func (r *Renderer) LiquidationFund(f *models.LiquidationFund, clubName string) ([]byte, error) {
	pdf := r.newDoc("Liquidation of Funds", f.ReferenceCode)

	field(pdf, "Club", clubName)
	if f.ActivityDesign != nil {
		field(pdf, "Activity", f.ActivityDesign.NameOfActivity)
	}
	field(pdf, "Status", f.Status)
	pdf.Ln(3)

	var expenses []struct {
		Item   string  `json:"item"`
		Amount float64 `json:"amount"`
	}
	if len(f.Expenses) > 0 {
		_ = json.Unmarshal(f.Expenses, &expenses)
	}
	if len(expenses) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 7, "Item", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, "Amount", "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, e := range expenses {
			pdf.CellFormat(120, 7, e.Item, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", e.Amount), "1", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 7, "Total", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", f.TotalAmount), "1", 1, "R", false, 0, "")
	} else {
		field(pdf, "Total Amount", fmt.Sprintf("PHP %.2f", f.TotalAmount))
	}

	if err := r.qrBlock(pdf, "liquidation-fund", f.ReferenceCode); err != nil {
		return nil, err
	}
	return r.output(pdf)
}

func joinDateTime(date, t string) string {
	switch {
	case date == "":
		return t
	case t == "":
		return date
	}
	return date + " " + t
}

// namesFromItems flattens a facilities/equipment JSON array into a readable
// comma-separated list. Entries may be plain strings or objects with a name.
func namesFromItems(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return ""
	}

	out := ""
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			out = appendName(out, s)
			continue
		}
		var obj struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
		}
		if err := json.Unmarshal(entry, &obj); err == nil && obj.Name != "" {
			if obj.Quantity > 1 {
				out = appendName(out, fmt.Sprintf("%s x%d", obj.Name, obj.Quantity))
			} else {
				out = appendName(out, obj.Name)
			}
		}
	}
	return out
}

func appendName(list, name string) string {
	if list == "" {
		return name
	}
	return list + ", " + name
}
