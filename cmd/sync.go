package cmd

import (
	"fmt"
	"time"

	"db-standard/internal/model"
	"db-standard/internal/relation"
	"db-standard/internal/store"

	"github.com/spf13/cobra"
)

var apply bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Plan (and optionally apply) table/column relation patches",
	Long: `Computes relatedEntityName patches for tables and schemaName/relatedEntityName
patches for columns, plus column suggestions for attributes without a column.
Nothing is written unless --apply is given; suggestions are never applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := Store.LoadSnapshot()
		if err != nil {
			return err
		}
		plan, err := relation.BuildSyncPlan(snap)
		if err != nil {
			return err
		}

		if jsonOut {
			if err := printJSON(plan); err != nil {
				return err
			}
		} else {
			printPlan(plan)
		}

		if !apply {
			return nil
		}
		if plan.Preview.Counts.TotalChanges == 0 {
			logger.Info("Nothing to apply")
			return nil
		}
		return applyPlan(plan)
	},
}

func applyPlan(plan *relation.SyncPlan) error {
	tables, err := store.Load(Store, model.TableKind, "")
	if err != nil {
		return err
	}
	columns, err := store.Load(Store, model.ColumnKind, "")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	patchedTables, patchedColumns, err := relation.ApplyPlan(tables.Entries, columns.Entries, plan, now)
	if err != nil {
		return fmt.Errorf("failed to apply sync plan: %w", err)
	}

	if len(plan.TableUpdates) > 0 {
		tables.Entries = patchedTables
		if err := store.Save(Store, model.TableKind, "", tables); err != nil {
			return err
		}
	}
	if len(plan.ColumnUpdates) > 0 {
		columns.Entries = patchedColumns
		if err := store.Save(Store, model.ColumnKind, "", columns); err != nil {
			return err
		}
	}

	var logs []model.HistoryEntry
	for _, u := range plan.TableUpdates {
		logs = append(logs, model.HistoryEntry{
			Action: model.HistorySync, TargetType: model.DataTypeTable,
			TargetID: u.ID, TargetName: u.TableEnglishName, Timestamp: now,
			Details: changeDetails(u.Changes),
		})
	}
	for _, u := range plan.ColumnUpdates {
		logs = append(logs, model.HistoryEntry{
			Action: model.HistorySync, TargetType: model.DataTypeColumn,
			TargetID: u.ID, TargetName: u.TableEnglishName + "." + u.ColumnEnglishName, Timestamp: now,
			Details: changeDetails(u.Changes),
		})
	}
	if _, err := Store.AddHistoryLog(logs...); err != nil {
		return err
	}

	fmt.Printf("적용 완료: 테이블 %d건, 컬럼 %d건\n", len(plan.TableUpdates), len(plan.ColumnUpdates))
	return nil
}

func changeDetails(changes []relation.FieldChange) map[string]string {
	d := make(map[string]string, len(changes))
	for _, ch := range changes {
		d[ch.Field] = ch.Before + " -> " + ch.After
	}
	return d
}

func printPlan(plan *relation.SyncPlan) {
	c := plan.Preview.Counts
	fmt.Printf("테이블 %d건, 컬럼 %d건, 변경 필드 %d개 (모호: 테이블 %d, 컬럼 %d)\n",
		c.TableCandidates, c.ColumnCandidates, c.TotalChanges, c.AmbiguousTables, c.AmbiguousColumns)

	for _, u := range plan.TableUpdates {
		for _, ch := range u.Changes {
			fmt.Printf("  [테이블] %s.%s: %q -> %q\n", u.TableEnglishName, ch.Field, ch.Before, ch.After)
		}
	}
	for _, u := range plan.ColumnUpdates {
		for _, ch := range u.Changes {
			fmt.Printf("  [컬럼] %s.%s.%s: %q -> %q\n", u.TableEnglishName, u.ColumnEnglishName, ch.Field, ch.Before, ch.After)
		}
	}

	if len(plan.Suggestions) == 0 {
		return
	}
	fmt.Printf("컬럼 후보 제안 %d건 (자동 적용되지 않음)\n", c.AttributeSuggestions)
	for _, s := range plan.Suggestions {
		fmt.Printf("  %s.%s\n", s.EntityName, s.AttributeName)
		for _, cand := range s.Candidates {
			fmt.Printf("      %.2f  %s.%s (%s)\n", cand.Score, cand.TableEnglishName, cand.ColumnEnglishName, cand.ColumnKoreanName)
		}
	}
}

func init() {
	syncCmd.Flags().BoolVar(&apply, "apply", false, "write the planned patches and record them in the history")
	RootCmd.AddCommand(syncCmd)
}
