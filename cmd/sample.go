package cmd

import (
	"fmt"
	"strconv"

	"db-standard/internal/engine"
	"db-standard/internal/model"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a demo workspace into the data directory",
	Long: `Generates vocabulary, domains, terms and the five design definitions from a
built-in dictionary. Existing data files are overwritten. With --noise N, N
deliberate inconsistencies are planted so every check has something to report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := engine.Generate(engine.Options{
			Seed:           viper.GetInt64("sample.seed"),
			LogicalDbName:  viper.GetString("sample.logical_db"),
			PhysicalDbName: viper.GetString("sample.physical_db"),
			SchemaName:     viper.GetString("sample.schema"),
			Noise:          viper.GetInt("sample.noise"),
		})
		if err := ws.Save(Store); err != nil {
			return err
		}

		fmt.Printf("Sample written to %s\n", Store.Dir())
		fmt.Printf("  단어 %d, 도메인 %d, 용어 %d, 엔터티 %d, 속성 %d, 테이블 %d, 컬럼 %d\n",
			len(ws.Vocabulary), len(ws.Domains), len(ws.Terms), len(ws.Entities), len(ws.Attributes), len(ws.Tables), len(ws.Columns))
		for _, n := range ws.Noise {
			fmt.Printf("  noise %-22s %s\n", n.Kind, n.Target)
		}

		_, err := Store.AddHistoryLog(model.HistoryEntry{
			Action:     model.HistoryAdd,
			TargetType: model.DataTypeVocabulary,
			TargetName: "sample",
			Details:    map[string]string{"noise": strconv.Itoa(len(ws.Noise))},
		})
		return err
	},
}

func init() {
	sampleCmd.Flags().Int64("seed", 0, "random seed (0 = random)")
	sampleCmd.Flags().Int("noise", 0, "number of deliberate inconsistencies to plant")
	sampleCmd.Flags().String("schema", "APP", "schemaName of the generated definitions")
	sampleCmd.Flags().String("logical-db", "표준DB", "logicalDbName of the generated database")
	sampleCmd.Flags().String("physical-db", "STDDB", "physicalDbName of the generated database")

	viper.BindPFlag("sample.seed", sampleCmd.Flags().Lookup("seed"))
	viper.BindPFlag("sample.noise", sampleCmd.Flags().Lookup("noise"))
	viper.BindPFlag("sample.schema", sampleCmd.Flags().Lookup("schema"))
	viper.BindPFlag("sample.logical_db", sampleCmd.Flags().Lookup("logical-db"))
	viper.BindPFlag("sample.physical_db", sampleCmd.Flags().Lookup("physical-db"))

	RootCmd.AddCommand(sampleCmd)
}
