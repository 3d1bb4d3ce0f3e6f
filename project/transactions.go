package project

// Transactions projects a transactions document: one row per
// transaction. Teams missing from a record (free-agent signings, pure
// releases) collapse to sentinel cells rather than dropping the row.
func Transactions() Spec {
	return Spec{
		Path: []string{"transactions"},
		Prefix: []Column{
			{Name: "id", Required: true, Extract: func(row map[string]any) any {
				if id, ok := Int(row, "id"); ok {
					return id
				}
				return nil
			}},
			{Name: "playerID", Extract: func(row map[string]any) any {
				if id, ok := Int(row, "person", "id"); ok {
					return id
				}
				return nil
			}},
			{Name: "playerName", Extract: func(row map[string]any) any {
				if s := Str(row, "person", "fullName"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "fromID", Extract: func(row map[string]any) any {
				if id, ok := Int(row, "fromTeam", "id"); ok {
					return id
				}
				return nil
			}},
			{Name: "fromTeam", Extract: func(row map[string]any) any {
				if s := Str(row, "fromTeam", "name"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "toID", Extract: func(row map[string]any) any {
				if id, ok := Int(row, "toTeam", "id"); ok {
					return id
				}
				return nil
			}},
			{Name: "toTeam", Extract: func(row map[string]any) any {
				if s := Str(row, "toTeam", "name"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "date", Extract: func(row map[string]any) any {
				if s := Str(row, "date"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "effectiveDate", Extract: func(row map[string]any) any {
				if s := Str(row, "effectiveDate"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "typeCode", Extract: func(row map[string]any) any {
				if s := Str(row, "typeCode"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "typeDesc", Extract: func(row map[string]any) any {
				if s := Str(row, "typeDesc"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "description", Extract: func(row map[string]any) any {
				if s := Str(row, "description"); s != "" {
					return s
				}
				return nil
			}},
		},
		SortColumn: "date",
		SortDesc:   true,
	}
}
