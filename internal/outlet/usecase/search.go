package usecase

import (
	"context"
	"fmt"
	"strings"

	"outlet-assistant/internal/outlet"
)

const schemaInfo = `
Database Schema:
Table: outlets
Columns:
- id: INTEGER (Primary Key)
- name: VARCHAR(200) - Outlet name (e.g., 'ZUS Coffee KLCC')
- address: TEXT - Full address
- city: VARCHAR(100) - City name (e.g., 'Kuala Lumpur', 'Petaling Jaya')
- state: VARCHAR(100) - State name (e.g., 'Selangor', 'Federal Territory of Kuala Lumpur')
- postcode: VARCHAR(20) - Postal code
- latitude: FLOAT - GPS latitude
- longitude: FLOAT - GPS longitude
- phone: VARCHAR(50) - Phone number
- email: VARCHAR(100) - Email address
- opening_time: VARCHAR(20) - Opening time in HH:MM format
- closing_time: VARCHAR(20) - Closing time in HH:MM format
- is_24_hours: BOOLEAN - True if open 24 hours
- has_drive_thru: BOOLEAN - True if has drive-thru service
- has_wifi: BOOLEAN - True if has WiFi
- has_parking: BOOLEAN - True if has parking
- services: TEXT - JSON string of services (e.g., ["espresso", "cold brew", "pastries"])
- created_at: DATETIME - Record creation timestamp

Sample services include: espresso, cold brew, pastries, sandwiches, wifi, takeaway, drive-thru, dine-in, delivery, 24-hours, meetings, student-friendly, family-friendly
`

// SearchNL answers a natural-language question over the outlets database.
func (uc *implUseCase) SearchNL(ctx context.Context, input outlet.SearchNLInput) (outlet.SearchNLOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return outlet.SearchNLOutput{}, outlet.ErrEmptyQuery
	}
	if uc.llm == nil || uc.db == nil {
		return outlet.SearchNLOutput{}, outlet.ErrUnavailable
	}

	uc.l.Infof(ctx, "SearchNL: query=%q", input.Query)

	sqlQuery, err := uc.generateSQL(ctx, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "SearchNL: SQL generation failed: %v", err)
		return outlet.SearchNLOutput{}, fmt.Errorf("%w: %v", outlet.ErrSQLGeneration, err)
	}

	// Only SELECT statements are allowed through; the model prompt asks for
	// them but the guard is what enforces it.
	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(sqlQuery)), "SELECT") {
		uc.l.Warnf(ctx, "SearchNL: rejected non-SELECT statement: %q", sqlQuery)
		return outlet.SearchNLOutput{}, outlet.ErrNotSelect
	}

	results, err := uc.db.ExecuteSelect(ctx, sqlQuery)
	if err != nil {
		uc.l.Errorf(ctx, "SearchNL: query execution failed: %v", err)
		return outlet.SearchNLOutput{}, fmt.Errorf("failed to execute search: %w", err)
	}

	uc.l.Infof(ctx, "SearchNL: %d rows for %q", len(results), sqlQuery)

	return outlet.SearchNLOutput{
		Query:    input.Query,
		SQLQuery: sqlQuery,
		Results:  results,
		Count:    len(results),
	}, nil
}

func (uc *implUseCase) generateSQL(ctx context.Context, nlQuery string) (string, error) {
	prompt := fmt.Sprintf(`You are an expert SQL generator for a ZUS Coffee outlets database.

%s

Convert this natural language question to a valid SQLite query:
%q

Rules:
1. Only generate SELECT statements (no INSERT, UPDATE, DELETE)
2. Use proper SQLite syntax
3. For time comparisons, use string comparison (e.g., opening_time <= '10:00')
4. For JSON services, use LIKE operator (e.g., services LIKE '%%drive-thru%%')
5. Use LIMIT clause for "first few", "top", etc.
6. Be case-insensitive where appropriate using LOWER()
7. Return only the SQL query, no explanation

Examples:
- "outlets in Kuala Lumpur" -> SELECT * FROM outlets WHERE LOWER(city) = 'kuala lumpur'
- "outlets with drive thru" -> SELECT * FROM outlets WHERE has_drive_thru = 1
- "24 hour outlets" -> SELECT * FROM outlets WHERE is_24_hours = 1
- "outlets that serve pastries" -> SELECT * FROM outlets WHERE services LIKE '%%pastries%%'

SQL Query:`, schemaInfo, nlQuery)

	raw, err := uc.llm.Complete(ctx,
		"You are a SQL expert. Generate only valid SQLite SELECT queries.",
		prompt,
	)
	if err != nil {
		return "", err
	}

	return stripCodeFence(raw), nil
}

// stripCodeFence removes a surrounding markdown code block, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
