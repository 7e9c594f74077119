package utils

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"coursedesk/models"
)

// writeSheet renders a single-sheet workbook with a bold header row.
func writeSheet(sheet string, header []interface{}, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func UsersWorkbook(users []models.UserRow) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.ID, u.Name, u.Email, u.MobileNumber, u.Status})
	}
	return writeSheet("Users", []interface{}{"ID", "Name", "Email", "Mobile Number", "Status"}, rows)
}

func CurrencyLogWorkbook(logs []models.CurrencyLog) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []interface{}{l.ID, l.FromCurrency, l.OldRate, l.NewRate, l.ChangedAt, l.User})
	}
	return writeSheet("Currency History", []interface{}{"ID", "Currency", "Old Rate", "New Rate", "Changed At", "User"}, rows)
}
