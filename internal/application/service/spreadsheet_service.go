package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/apperror"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
)

// SpreadsheetService maps leads to and from a tabular spreadsheet
// representation
type SpreadsheetService struct {
	leads *LeadService
}

// NewSpreadsheetService creates a new spreadsheet service
func NewSpreadsheetService(leads *LeadService) *SpreadsheetService {
	return &SpreadsheetService{leads: leads}
}

// column keys resolved from the header row
const (
	colClientName     = "clientName"
	colCompany        = "company"
	colConsumerNumber = "consumerNumber"
	colKVA            = "kva"
	colConnectionDate = "connectionDate"
	colFollowUpDate   = "followUpDate"
	colDiscom         = "discom"
	colLocation       = "location"
	colNotes          = "notes"
	colStatus         = "status"
	colMobile         = "mobile"
	colMobile2        = "mobile2"
	colMobile3        = "mobile3"
	colContact2       = "contact2"
	colContact3       = "contact3"
)

// matchHeader resolves a header cell to a column key by case-insensitive
// keyword matching. Order matters: "Company Name" must resolve to company
// before the bare name rule fires, and numbered contact columns before
// the client-name fallback.
func matchHeader(cell string) (string, bool) {
	h := strings.ToLower(strings.TrimSpace(cell))
	if h == "" {
		return "", false
	}
	switch {
	case strings.Contains(h, "company"):
		return colCompany, true
	case strings.Contains(h, "consumer"):
		return colConsumerNumber, true
	case strings.Contains(h, "kva"):
		return colKVA, true
	case strings.Contains(h, "connection") && strings.Contains(h, "date"):
		return colConnectionDate, true
	case strings.Contains(h, "follow") && strings.Contains(h, "date"):
		return colFollowUpDate, true
	case strings.Contains(h, "discom"):
		return colDiscom, true
	case strings.Contains(h, "mobile") || strings.Contains(h, "phone"):
		switch {
		case strings.Contains(h, "2"):
			return colMobile2, true
		case strings.Contains(h, "3"):
			return colMobile3, true
		default:
			return colMobile, true
		}
	case strings.Contains(h, "contact") && strings.Contains(h, "2"):
		return colContact2, true
	case strings.Contains(h, "contact") && strings.Contains(h, "3"):
		return colContact3, true
	case strings.Contains(h, "location") || strings.Contains(h, "address"):
		return colLocation, true
	case strings.Contains(h, "notes") || strings.Contains(h, "discussion"):
		return colNotes, true
	case strings.Contains(h, "status"):
		return colStatus, true
	case strings.Contains(h, "client") || strings.Contains(h, "name"):
		return colClientName, true
	}
	return "", false
}

// ImportResult reports how an import went
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import reads the first sheet of the given workbook and creates one
// lead per data row. Row 1 is the header row; rows without a resolvable
// client name are discarded, and malformed rows are skipped rather than
// aborting the import.
func (s *SpreadsheetService) Import(ctx context.Context, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.NewBadInputError("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	result := &ImportResult{}
	if len(rows) < 2 {
		return result, nil
	}

	columns := make(map[string]int)
	for i, cell := range rows[0] {
		if key, ok := matchHeader(cell); ok {
			if _, taken := columns[key]; !taken {
				columns[key] = i
			}
		}
	}

	cell := func(row []string, key string) string {
		idx, ok := columns[key]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		input := &LeadInput{
			ClientName:      cell(row, colClientName),
			Company:         cell(row, colCompany),
			ConsumerNumber:  cell(row, colConsumerNumber),
			KVA:             cell(row, colKVA),
			ConnectionDate:  cell(row, colConnectionDate),
			FollowUpDate:    cell(row, colFollowUpDate),
			Discom:          cell(row, colDiscom),
			CompanyLocation: cell(row, colLocation),
			Notes:           cell(row, colNotes),
			Status:          enum.NormalizeLeadStatus(cell(row, colStatus)),
		}
		if main := cell(row, colMobile); main != "" {
			input.MobileNumbers = append(input.MobileNumbers, MobileNumberInput{Number: main, IsMain: true})
		}
		if extra := cell(row, colMobile2); extra != "" {
			input.MobileNumbers = append(input.MobileNumbers, MobileNumberInput{
				Number: extra,
				Name:   cell(row, colContact2),
			})
		}
		if extra := cell(row, colMobile3); extra != "" {
			input.MobileNumbers = append(input.MobileNumbers, MobileNumberInput{
				Number: extra,
				Name:   cell(row, colContact3),
			})
		}

		if _, err := s.leads.ImportLead(ctx, input); err != nil {
			result.Skipped++
			logger.Log.Warn("skipping import row", zap.Error(err))
			continue
		}
		result.Imported++
	}

	logger.Log.Info("spreadsheet import finished",
		zap.Int("imported", result.Imported), zap.Int("skipped", result.Skipped))
	return result, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// exportHeaders is the fixed export column order
var exportHeaders = []string{
	"Consumer Number",
	"KVA",
	"Connection Date",
	"Company",
	"Client Name",
	"Discom",
	"Mobile Number",
	"Status",
	"Notes",
	"Address",
	"Follow-up Date",
	"Mobile Number 2",
	"Contact Name 2",
	"Mobile Number 3",
	"Contact Name 3",
}

// Export writes every non-deleted lead to a workbook at the given path,
// one row per lead in the fixed column order.
func (s *SpreadsheetService) Export(ctx context.Context, path string) error {
	leads, err := s.leads.ListLeads(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leads"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "O1", headerStyle)
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	rowNum := 2
	for i := range leads {
		lead := &leads[i]
		if lead.IsDeleted {
			continue
		}
		row := exportRow(lead)
		addr, _ := excelize.JoinCellName("A", rowNum)
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return fmt.Errorf("failed to write row for lead %s: %w", lead.ID, err)
		}
		rowNum++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	logger.Log.Info("spreadsheet export finished",
		zap.String("path", path), zap.Int("leads", rowNum-2))
	return nil
}

func exportRow(lead *entity.Lead) []interface{} {
	main := lead.MainNumber()
	mainCell := main.Number
	if main.Name != "" {
		mainCell = fmt.Sprintf("%s (%s)", main.Number, main.Name)
	}

	// the first two entries besides the effective main number
	var extras []entity.MobileNumber
	for _, m := range lead.MobileNumbers {
		if m.ID != main.ID && len(extras) < 2 {
			extras = append(extras, m)
		}
	}
	extraCell := func(i int) (number, name string) {
		if i < len(extras) {
			return extras[i].Number, extras[i].Name
		}
		return "", ""
	}
	mobile2, contact2 := extraCell(0)
	mobile3, contact3 := extraCell(1)

	return []interface{}{
		lead.ConsumerNumber,
		lead.KVA,
		lead.ConnectionDate,
		lead.Company,
		lead.ClientName,
		lead.Discom,
		mainCell,
		lead.Status.String(),
		lead.Notes,
		lead.CompanyLocation,
		lead.FollowUpDate,
		mobile2,
		contact2,
		mobile3,
		contact3,
	}
}
