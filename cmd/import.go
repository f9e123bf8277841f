package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"db-standard/internal/dialect"
	"db-standard/internal/model"
	"db-standard/internal/schema"
	"db-standard/internal/store"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var (
	importSchema   string
	targetSchema   string
	physicalDbName string
	dryRun         bool
	hintLimit      int
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import tables and columns from the active database",
	Long: `Reads the catalog of the active database (databases[].active in the config),
converts tables and columns into table/column definitions and merges them into
the data directory. Names someone already filled in are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetActiveDBConfig()
		if err != nil {
			return err
		}
		d, err := dialect.GetDialect(config.Driver)
		if err != nil {
			return err
		}

		fmt.Printf("Connecting via %s (%s)\n", config.Driver, config.Name)
		db, err := sql.Open(config.Driver, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		schemaName := importSchema
		if schemaName == "" {
			schemaName = config.Schema
		}
		if schemaName == "" && config.Driver == "mysql" {
			if err := db.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&schemaName); err != nil {
				return fmt.Errorf("failed to get database name: %w", err)
			}
			if schemaName == "" {
				return fmt.Errorf("no database selected in DSN")
			}
		}

		logger.Info("Analyzing schema", slog.String("driver", config.Driver), slog.String("schema", d.GetSchemaName(schemaName)))
		tables, err := schema.Analyze(ctx, db, d, schemaName)
		if err != nil {
			return fmt.Errorf("failed to analyze schema: %w", err)
		}
		if len(tables) == 0 {
			fmt.Println("No tables found.")
			return nil
		}

		nctx, err := Store.LoadNamingContext()
		if err != nil {
			return err
		}
		target := schema.Target{PhysicalDbName: physicalDbName, SchemaName: targetSchema}
		if target.PhysicalDbName == "" {
			target.PhysicalDbName = config.Name
		}
		if target.SchemaName == "" {
			target.SchemaName = d.GetSchemaName(schemaName)
		}

		var importedTables []model.TableEntry
		var importedColumns []model.ColumnEntry

		uiprogress.Start()
		bar := uiprogress.AddBar(len(tables)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("Converting (%d/%d)", b.Current(), len(tables))
		})
		for _, t := range tables {
			ts, cs := schema.ToDefinitions([]*schema.Table{t}, target, nctx.Lexicon())
			importedTables = append(importedTables, ts...)
			importedColumns = append(importedColumns, cs...)
			bar.Incr()
		}
		uiprogress.Stop()

		existingTables, err := store.Load(Store, model.TableKind, "")
		if err != nil {
			return err
		}
		existingColumns, err := store.Load(Store, model.ColumnKind, "")
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		mergedTables, tableStats := schema.MergeTables(existingTables.Entries, importedTables, now, store.NewEntryID)
		mergedColumns, columnStats := schema.MergeColumns(existingColumns.Entries, importedColumns, now, store.NewEntryID)

		fmt.Printf("테이블: %s\n", tableStats)
		fmt.Printf("컬럼:   %s\n", columnStats)
		printHints(schema.UnmappedTokens(tables, nctx.Lexicon()))

		if dryRun {
			fmt.Println("Dry run: nothing written.")
			return nil
		}

		existingTables.Entries = mergedTables
		if err := store.Save(Store, model.TableKind, "", existingTables); err != nil {
			return err
		}
		existingColumns.Entries = mergedColumns
		if err := store.Save(Store, model.ColumnKind, "", existingColumns); err != nil {
			return err
		}

		_, err = Store.AddHistoryLog(
			model.HistoryEntry{
				Action: model.HistoryImport, TargetType: model.DataTypeTable, TargetName: target.PhysicalDbName, Timestamp: now,
				Details: map[string]string{"schema": target.SchemaName, "result": tableStats.String()},
			},
			model.HistoryEntry{
				Action: model.HistoryImport, TargetType: model.DataTypeColumn, TargetName: target.PhysicalDbName, Timestamp: now,
				Details: map[string]string{"schema": target.SchemaName, "result": columnStats.String()},
			},
		)
		return err
	},
}

func printHints(hints []schema.TokenHint) {
	if len(hints) == 0 {
		return
	}
	fmt.Printf("단어집에 없는 약어 %d개", len(hints))
	if hintLimit > 0 && len(hints) > hintLimit {
		fmt.Printf(" (상위 %d개)", hintLimit)
		hints = hints[:hintLimit]
	}
	fmt.Println()
	for _, h := range hints {
		eng := h.English
		if eng == "" {
			eng = "?"
		}
		fmt.Printf("  %-8s %4d  %-14s %v\n", h.Token, h.Count, eng, h.Examples)
	}
}

func init() {
	importCmd.Flags().StringVar(&importSchema, "schema", "", "database schema to read (overrides databases[].schema)")
	importCmd.Flags().StringVar(&targetSchema, "target-schema", "", "schemaName recorded on imported definitions (default: the database schema)")
	importCmd.Flags().StringVar(&physicalDbName, "physical-db", "", "physicalDbName recorded on imported tables (default: databases[].name)")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would change without writing")
	importCmd.Flags().IntVar(&hintLimit, "hints", 20, "maximum unmapped abbreviations to list (0 = all)")

	RootCmd.AddCommand(importCmd)
}
