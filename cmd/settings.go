package cmd

import (
	"fmt"
	"strings"

	"db-standard/internal/store"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change display settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := Store.Settings()
		if err != nil {
			return err
		}
		return printJSON(svc.Get())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set key=value [key=value...]",
	Short: "Change settings, e.g. set pageSize=50 showTermSystemFields=true",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs := make(map[string]string, len(args))
		for _, a := range args {
			k, v, ok := strings.Cut(a, "=")
			if !ok {
				return fmt.Errorf("expected key=value, got %q", a)
			}
			pairs[strings.TrimSpace(k)] = v
		}
		patch, err := store.ParseSettingsPatch(pairs)
		if err != nil {
			return err
		}

		svc, err := Store.Settings()
		if err != nil {
			return err
		}
		cur := svc.Set(patch)
		if err := svc.Save(); err != nil {
			return err
		}
		return printJSON(cur)
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)
	RootCmd.AddCommand(settingsCmd)
}
