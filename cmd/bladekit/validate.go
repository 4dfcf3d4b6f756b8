package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bladekit/bladekit"
	"github.com/bladekit/bladekit/pkg/i18n"
)

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check resources for duplicates and missing translations",
		Long: `validate loads the application's resource tree, resolves every supported
locale, and reports:

  - duplicate token definitions within one scope and locale (fatal)
  - resource files for locales outside the declared set (warning)
  - tokens defined in some locales but missing from others

With --strict, missing translations also fail the command.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bladekit.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runValidate(cmd, cfg, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on missing translations")

	return cmd
}

func runValidate(cmd *cobra.Command, cfg bladekit.Config, strict bool) error {
	store, err := i18n.NewStore(os.DirFS(cfg.ResourceDir),
		i18n.WithSupportedLocales(cfg.Locales...),
		i18n.WithAspectName(cfg.App),
	)
	if err != nil {
		return fmt.Errorf("loading resources from %q: %w", cfg.ResourceDir, err)
	}

	for _, warn := range store.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warn)
	}

	resolver := i18n.NewResolver(store)

	// Resolve each locale separately so one duplicate does not mask another.
	var failed bool
	tables := make(map[string]*i18n.TokenTable, len(cfg.Locales))
	for _, locale := range cfg.Locales {
		table, err := resolver.Resolve(locale)
		if err != nil {
			var dup *i18n.DuplicateTokenError
			if errors.As(err, &dup) {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", dup)
				failed = true
				continue
			}
			return err
		}
		tables[locale] = table
	}
	if failed {
		return errors.New("duplicate token definitions found")
	}

	missing := coverageGaps(tables)
	for _, locale := range slices.Sorted(maps.Keys(missing)) {
		for _, key := range missing[locale] {
			fmt.Fprintf(cmd.OutOrStdout(), "missing: locale %s has no translation for %q\n", locale, key)
		}
	}

	total := 0
	for _, keys := range missing {
		total += len(keys)
	}
	if total > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d missing translation(s) across %d locale(s)\n", total, len(missing))
		if strict {
			return errors.New("missing translations")
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d locale(s), full coverage\n", len(tables))
	}

	return nil
}

// coverageGaps compares each locale's key set against the union of all
// locales and returns the sorted keys each locale lacks.
func coverageGaps(tables map[string]*i18n.TokenTable) map[string][]string {
	union := make(map[string]struct{})
	for _, table := range tables {
		for _, key := range table.Keys() {
			union[key] = struct{}{}
		}
	}

	gaps := make(map[string][]string)
	for locale, table := range tables {
		for key := range union {
			if _, ok := table.Lookup(key); !ok {
				gaps[locale] = append(gaps[locale], key)
			}
		}
		slices.Sort(gaps[locale])
	}
	return gaps
}
