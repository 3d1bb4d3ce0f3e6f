package project

// draftRows flattens drafts.rounds[].picks[] into one row per pick.
func draftRows(doc map[string]any) []map[string]any {
	var rows []map[string]any
	for _, r := range Slice(doc, "drafts", "rounds") {
		round, ok := r.(map[string]any)
		if !ok {
			continue
		}
		for _, p := range Slice(round, "picks") {
			if pick, ok := p.(map[string]any); ok {
				rows = append(rows, pick)
			}
		}
	}
	return rows
}

// Draft projects a draft document: one row per pick.
func Draft() Spec {
	return Spec{
		Rows: draftRows,
		Prefix: []Column{
			{Name: "round", Extract: func(row map[string]any) any {
				if s := Str(row, "pickRound"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "pick", Required: true, Extract: func(row map[string]any) any {
				if n, ok := Int(row, "pickNumber"); ok {
					return n
				}
				return nil
			}},
			{Name: "roundPick", Extract: func(row map[string]any) any {
				if n, ok := Int(row, "roundPickNumber"); ok {
					return n
				}
				return nil
			}},
			{Name: "rank", Extract: func(row map[string]any) any {
				if n, ok := Int(row, "rank"); ok {
					return n
				}
				return nil
			}},
			{Name: "name", Extract: func(row map[string]any) any {
				if s := Str(row, "person", "fullName"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "school", Extract: func(row map[string]any) any {
				if s := Str(row, "school", "name"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "born", Extract: func(row map[string]any) any {
				if s := Str(row, "person", "birthDate"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "position", Extract: func(row map[string]any) any {
				if s := Str(row, "person", "primaryPosition", "abbreviation"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "bats", Extract: func(row map[string]any) any {
				if s := Str(row, "person", "batSide", "code"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "throws", Extract: func(row map[string]any) any {
				if s := Str(row, "person", "pitchHand", "code"); s != "" {
					return s
				}
				return nil
			}},
			{Name: "team", Extract: func(row map[string]any) any {
				if s := Str(row, "team", "name"); s != "" {
					return s
				}
				return nil
			}},
		},
		SortColumn: "pick",
	}
}
