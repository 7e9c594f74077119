package utils

import (
	"strings"

	"coursedesk/models"
)

// SearchUsers keeps the rows whose name, email, mobile number or id contains
// the query, case-insensitively. A blank query keeps every row.
func SearchUsers(rows []models.UserRow, query string) []models.UserRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}

	matched := make([]models.UserRow, 0, len(rows))
	for _, row := range rows {
		for _, field := range []string{row.Name, row.Email, row.MobileNumber, row.ID} {
			if strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}
