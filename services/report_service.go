package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wisemoney/wisemoney-backend/models"
)

// ReportService exports a group's ledger as an Excel workbook.
type ReportService struct {
	groupService *GroupService
}

// NewReportService creates a new report service
func NewReportService(groupService *GroupService) *ReportService {
	return &ReportService{
		groupService: groupService,
	}
}

// GroupReport builds a workbook with the group's expenses, settlements and
// simplified balances. The caller must be a group member; the same
// authorization as the ledger query applies. Returns the file and a
// suggested filename.
func (s *ReportService) GroupReport(callerID, groupID string) (*excelize.File, string, error) {
	data, err := s.groupService.GroupLedger(callerID, groupID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	if err := s.writeExpensesSheet(f, data); err != nil {
		return nil, "", err
	}
	if err := s.writeSettlementsSheet(f, data); err != nil {
		return nil, "", err
	}
	if err := s.writeBalancesSheet(f, data); err != nil {
		return nil, "", err
	}

	// The default sheet is replaced by the ones above
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s-report-%s.xlsx", data.Group.Name, time.Now().Format("2006-01-02"))
	return f, filename, nil
}

func (s *ReportService) writeExpensesSheet(f *excelize.File, data *models.GroupLedgerResponse) error {
	const sheet = "Expenses"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %v", err)
	}

	headers := []string{"Date", "Description", "Category", "Paid By", "Amount", "Split Type"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, exp := range data.Expenses {
		values := []interface{}{
			time.UnixMilli(exp.Date).Format("2006-01-02"),
			exp.Description,
			exp.Category,
			s.displayName(data, exp.PaidByUserID),
			exp.Amount,
			exp.SplitType,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func (s *ReportService) writeSettlementsSheet(f *excelize.File, data *models.GroupLedgerResponse) error {
	const sheet = "Settlements"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %v", err)
	}

	headers := []string{"Date", "Paid By", "Received By", "Amount", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, st := range data.Settlements {
		values := []interface{}{
			time.UnixMilli(st.Date).Format("2006-01-02"),
			s.displayName(data, st.PaidByUserID),
			s.displayName(data, st.ReceivedByUserID),
			st.Amount,
			st.Note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func (s *ReportService) writeBalancesSheet(f *excelize.File, data *models.GroupLedgerResponse) error {
	const sheet = "Balances"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %v", err)
	}

	headers := []string{"Member", "Net Balance", "Owes", "Owed By"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, balance := range data.Balances {
		owes := ""
		for i, debt := range balance.Owes {
			if i > 0 {
				owes += "; "
			}
			owes += fmt.Sprintf("%s: %.2f", s.displayName(data, debt.To), debt.Amount)
		}
		owedBy := ""
		for i, debt := range balance.OwedBy {
			if i > 0 {
				owedBy += "; "
			}
			owedBy += fmt.Sprintf("%s: %.2f", s.displayName(data, debt.From), debt.Amount)
		}

		values := []interface{}{
			s.displayName(data, balance.UserID),
			balance.TotalBalance,
			owes,
			owedBy,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func (s *ReportService) displayName(data *models.GroupLedgerResponse, userID string) string {
	if m, ok := data.UserLookupMap[userID]; ok {
		return m.Name
	}
	return userID
}
