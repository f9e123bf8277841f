package cmd

import (
	"fmt"
	"sort"
	"strings"

	"db-standard/internal/model"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyType  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the change history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := Store.LoadHistory()
		if err != nil {
			return err
		}

		var filter model.DataType
		if historyType != "" {
			if filter, err = model.ParseDataType(historyType); err != nil {
				return err
			}
		}

		logs := make([]model.HistoryEntry, 0, len(h.Logs))
		for _, e := range h.Logs {
			if filter != "" && e.TargetType != filter {
				continue
			}
			logs = append(logs, e)
			if historyLimit > 0 && len(logs) == historyLimit {
				break
			}
		}

		if jsonOut {
			return printJSON(logs)
		}
		for _, e := range logs {
			fmt.Printf("%s  %-6s %-8s %s%s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Action, e.TargetType.Label(), e.TargetName, formatDetails(e.Details))
		}
		fmt.Printf("(%d/%d)\n", len(logs), h.TotalCount)
		return nil
	},
}

func formatDetails(d map[string]string) string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + d[k]
	}
	return "  {" + strings.Join(parts, ", ") + "}"
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "maximum entries to show (0 = all)")
	historyCmd.Flags().StringVar(&historyType, "type", "", "only show entries for this data type")
	RootCmd.AddCommand(historyCmd)
}
