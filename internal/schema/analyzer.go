package schema

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"db-standard/internal/dialect"
)

// ---------------------------------------------------------------------
// 1. Catalog Analysis
// ---------------------------------------------------------------------

// Analyze reads tables, columns and foreign keys of one schema and returns
// the tables in FK dependency order.
func Analyze(ctx context.Context, db *sql.DB, d dialect.Dialect, schemaName string) ([]*Table, error) {
	target := d.GetSchemaName(schemaName)

	// 대소문자 구분 없이 찾기 위해 키는 대문자로 정규화 (Oracle)
	tableMap := make(map[string]*Table)
	var tables []*Table

	// --- Step 1: Fetch Tables ---
	rows, err := db.QueryContext(ctx, d.GetTablesQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, comment sql.NullString
		if err := rows.Scan(&name, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		if !name.Valid {
			continue
		}
		t := &Table{Name: name.String, Comment: strings.TrimSpace(comment.String), Dependencies: []string{}}
		tableMap[strings.ToUpper(name.String)] = t
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	// --- Step 2: Fetch Columns ---
	colRows, err := db.QueryContext(ctx, d.GetColumnsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, dType, isNull, cKey, isUnique, comment sql.NullString
		var cLen, cPrec, cScale sql.NullString // 드라이버마다 숫자 타입이 달라 문자열로 받는다

		if err := colRows.Scan(&tName, &cName, &dType, &cLen, &cPrec, &cScale, &isNull, &cKey, &isUnique, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}
		if !tName.Valid || !cName.Valid {
			continue
		}

		t, ok := tableMap[strings.ToUpper(tName.String)]
		if !ok {
			continue
		}
		nullable := strings.ToUpper(strings.TrimSpace(isNull.String))
		t.Columns = append(t.Columns, &Column{
			Name:       cName.String,
			DataType:   d.NormalizeType(dType.String),
			Length:     parseSize(cLen),
			Precision:  parseSize(cPrec),
			Scale:      parseSize(cScale),
			IsNullable: nullable == "YES" || nullable == "Y",
			IsPK:       strings.Contains(cKey.String, "PRI"),
			IsUnique:   strings.Contains(isUnique.String, "UNIQUE"),
			Comment:    strings.TrimSpace(comment.String),
		})
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	// --- Step 3: Fetch Foreign Keys ---
	fkRows, err := db.QueryContext(ctx, d.GetForeignKeysQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var tName, cConst, cName, rTable, rCol sql.NullString
		if err := fkRows.Scan(&tName, &cConst, &cName, &rTable, &rCol); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		if !tName.Valid || !rTable.Valid {
			continue
		}

		t, ok := tableMap[strings.ToUpper(tName.String)]
		if !ok {
			continue
		}
		ref, known := tableMap[strings.ToUpper(rTable.String)]
		if !known {
			// 다른 스키마를 참조하는 FK는 정의서에 그대로 남긴다
			t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{Column: cName.String, RefTable: rTable.String, RefColumn: rCol.String})
			continue
		}
		t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{Column: cName.String, RefTable: ref.Name, RefColumn: rCol.String})
		if ref != t {
			t.Dependencies = append(t.Dependencies, ref.Name)
		}
	}
	if err := fkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys: %w", err)
	}

	return SortTablesByFKCount(tables), nil
}

// parseSize reads an integer catalog value that may come back as "10" or "10.0".
func parseSize(v sql.NullString) int {
	if !v.Valid || v.String == "" {
		return 0
	}
	if n, err := strconv.Atoi(v.String); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v.String, 64); err == nil {
		return int(f)
	}
	return 0
}

// ---------------------------------------------------------------------
// 2. Sorting Algorithm (Topological / Greedy)
// ---------------------------------------------------------------------

// SortTablesByFKCount sorts tables so that referenced tables come first.
// Circular dependencies are broken with a scoring heuristic.
func SortTablesByFKCount(tables []*Table) []*Table {
	var sorted []*Table
	processed := make(map[string]bool)
	byName := make(map[string]*Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}

	for len(sorted) < len(tables) {
		added := false

		// Pass 1: 의존 테이블이 모두 처리된 테이블부터 추가
		for _, t := range tables {
			if processed[t.Name] {
				continue
			}

			ready := true
			for _, dep := range t.Dependencies {
				if !processed[dep] {
					ready = false
					break
				}
			}

			if ready {
				sorted = append(sorted, t)
				processed[t.Name] = true
				added = true
			}
		}

		// Pass 2: 순환 참조. 점수가 가장 높은 테이블로 고리를 끊는다
		if !added {
			var best *Table
			bestScore := -999999

			for _, t := range tables {
				if processed[t.Name] {
					continue
				}

				// 미처리 의존성 1개당 -100, 서로 참조하는 고리에 속하면 +500
				score := 0
				circular := false
				for _, dep := range t.Dependencies {
					if processed[dep] {
						continue
					}
					score -= 100
					if cand, ok := byName[dep]; ok && !circular {
						for _, candDep := range cand.Dependencies {
							if candDep == t.Name {
								circular = true
								break
							}
						}
					}
				}
				if circular {
					score += 500
				}

				// 동점이면 이름순으로 결정
				if score > bestScore || (score == bestScore && (best == nil || t.Name > best.Name)) {
					bestScore = score
					best = t
				}
			}

			if best == nil {
				slog.Warn("Remaining tables cannot be sorted", slog.Int("remaining", len(tables)-len(sorted)))
				break
			}
			sorted = append(sorted, best)
			processed[best.Name] = true
			slog.Debug("Breaking circular dependency", slog.String("table", best.Name), slog.Int("score", bestScore))
		}
	}

	return sorted
}
