package cmd

import (
	"fmt"
	"strconv"

	"db-standard/internal/model"
	"db-standard/internal/store"
	"db-standard/internal/validate"

	"github.com/spf13/cobra"
)

var (
	strict bool
	remap  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate vocabulary, domains and terms",
	Long:  "Runs all three naming validators. Use a subcommand to run only one of them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		nctx, err := Store.LoadNamingContext()
		if err != nil {
			return err
		}
		terms, err := store.Load(Store, model.TermKind, "")
		if err != nil {
			return err
		}
		reports := []namedReport{
			{model.DataTypeVocabulary, validate.ValidateVocabulary(nctx)},
			{model.DataTypeDomain, validate.ValidateDomains(nctx.Domains)},
			{model.DataTypeTerm, validate.ValidateTerms(terms.Entries, nctx)},
		}
		return emitReports(reports)
	},
}

var validateVocabularyCmd = &cobra.Command{
	Use:     "vocabulary",
	Aliases: []string{"vocab", "words"},
	Short:   "Validate the vocabulary (단어집)",
	RunE: func(cmd *cobra.Command, args []string) error {
		nctx, err := Store.LoadNamingContext()
		if err != nil {
			return err
		}
		return emitReports([]namedReport{{model.DataTypeVocabulary, validate.ValidateVocabulary(nctx)}})
	},
}

var validateDomainCmd = &cobra.Command{
	Use:     "domain",
	Aliases: []string{"domains"},
	Short:   "Validate domains (도메인)",
	RunE: func(cmd *cobra.Command, args []string) error {
		domains, err := store.Load(Store, model.DomainKind, "")
		if err != nil {
			return err
		}
		return emitReports([]namedReport{{model.DataTypeDomain, validate.ValidateDomains(domains.Entries)}})
	},
}

var validateTermCmd = &cobra.Command{
	Use:     "term",
	Aliases: []string{"terms"},
	Short:   "Validate terms (용어)",
	RunE: func(cmd *cobra.Command, args []string) error {
		nctx, err := Store.LoadNamingContext()
		if err != nil {
			return err
		}
		terms, err := store.Load(Store, model.TermKind, "")
		if err != nil {
			return err
		}

		if remap {
			if err := remapTerms(terms, nctx); err != nil {
				return err
			}
		}
		return emitReports([]namedReport{{model.DataTypeTerm, validate.ValidateTerms(terms.Entries, nctx)}})
	},
}

// remapTerms recomputes the mapping flags of every term and saves the ones
// that changed.
func remapTerms(terms *model.DataFile[model.TermEntry], nctx *validate.Context) error {
	changed := 0
	for i, t := range terms.Entries {
		mapped := validate.MapTerm(t, nctx)
		if !validate.MappingChanged(t, mapped) {
			continue
		}
		terms.Entries[i] = mapped
		changed++
	}
	if changed == 0 {
		logger.Info("Term mapping flags are up to date")
		return nil
	}
	if err := store.Save(Store, model.TermKind, "", terms); err != nil {
		return err
	}
	if _, err := Store.AddHistoryLog(model.HistoryEntry{
		Action:     model.HistoryUpdate,
		TargetType: model.DataTypeTerm,
		TargetName: "remap",
		Details:    map[string]string{"updated": strconv.Itoa(changed)},
	}); err != nil {
		return err
	}
	logger.Info("Remapped terms", "updated", changed)
	return nil
}

type namedReport struct {
	Type   model.DataType  `json:"type"`
	Report validate.Report `json:"report"`
}

func emitReports(reports []namedReport) error {
	failed := 0
	for _, r := range reports {
		failed += r.Report.FailedCount
	}

	if jsonOut {
		if err := printJSON(reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			printReport(r.Type.Label(), r.Report)
		}
	}

	if strict && failed > 0 {
		return fmt.Errorf("%w: %d entries have issues", ErrValidationFailed, failed)
	}
	return nil
}

func printReport(title string, r validate.Report) {
	fmt.Printf("[%s] 전체 %d / 통과 %d / 실패 %d\n", title, r.TotalCount, r.PassedCount, r.FailedCount)
	for _, res := range r.FailedEntries {
		label := res.Label
		if label == "" {
			label = "(이름 없음)"
		}
		fmt.Printf("  - %s (%s)\n", label, res.EntryID)
		for _, is := range res.Errors {
			fmt.Printf("      [%s] %s\n", is.Code, is.Message)
		}
		if res.GeneratedDomainName != "" && res.GeneratedDomainName != res.Label {
			fmt.Printf("      생성 도메인명: %s\n", res.GeneratedDomainName)
		}
		for _, fix := range res.AutoFixes {
			fmt.Printf("      제안 %s: %q -> %q (%s)\n", fix.Field, fix.Current, fix.Suggested, fix.Reason)
		}
	}
}

func init() {
	validateCmd.PersistentFlags().BoolVar(&strict, "strict", false, "exit with an error when any entry fails")
	validateTermCmd.Flags().BoolVar(&remap, "remap", false, "recompute and save term mapping flags before validating")

	validateCmd.AddCommand(validateVocabularyCmd, validateDomainCmd, validateTermCmd)
	RootCmd.AddCommand(validateCmd)
}
