package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/web/internal/version"
	"github.com/arthur-debert/web/pkg/aliases"
	"github.com/arthur-debert/web/pkg/complete"
	"github.com/arthur-debert/web/pkg/errors"
	"github.com/arthur-debert/web/pkg/logging"
	"github.com/arthur-debert/web/pkg/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "add <aliases> <url>",
		Short:       MsgAddShort,
		Long:        MsgAddLong,
		Example:     MsgAddExample,
		GroupID:     groupCore,
		Args:        cobra.ExactArgs(2),
		Annotations: slots("none,none"),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			names := aliases.ParseNames(args[0])
			url := args[1]
			if err := store.Add(names, url); err != nil {
				return err
			}

			logger := logging.GetLogger("cli.add")
			logger.Info().Strs("aliases", names).Str("url", url).Msg("Aliases added")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgAdded, aliases.Quote(names), url)
			return nil
		},
	}
}

func (a *app) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "remove <aliases>",
		Short:       MsgRemoveShort,
		Long:        MsgRemoveLong,
		GroupID:     groupCore,
		Args:        cobra.ExactArgs(1),
		Annotations: slots("aliases"),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			names := aliases.ParseNames(args[0])
			if err := store.Remove(names); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgRemoved, aliases.Quote(names))
			return nil
		},
	}
}

// listRow is one line of `web list`: every alias of one URL
type listRow struct {
	names string
	url   string
}

// groupByURL builds the rows of `web list`, sorted by URL with names in
// file order
func groupByURL(entries []aliases.Alias) []listRow {
	groups := lo.GroupBy(entries, func(e aliases.Alias) string { return e.URL })

	urls := lo.Keys(groups)
	sort.Strings(urls)

	return lo.Map(urls, func(url string, _ int) listRow {
		names := lo.Map(groups[url], func(e aliases.Alias, _ int) string { return e.Name })
		return listRow{names: strings.Join(names, ", "), url: url}
	})
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			entries, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, style.Render(MsgNoAliases))
				return nil
			}

			rows := groupByURL(entries)
			width := lo.Max(lo.Map(rows, func(r listRow, _ int) int { return len(r.names) }))

			aliasStyle := style.GetStyle("Alias")
			urlStyle := style.GetStyle("URL")
			for _, row := range rows {
				// Padding is added outside the styled text so escape codes
				// do not count towards the column width.
				pad := strings.Repeat(" ", width-len(row.names)+2)
				_, _ = fmt.Fprintln(out, aliasStyle.Render(row.names)+pad+urlStyle.Render(row.url))
			}
			return nil
		},
	}
}

func (a *app) newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			doc, err := store.Load()
			if err != nil {
				return err
			}

			data, err := doc.MarshalAliases()
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigWrite, MsgErrWriteExport, output).
					WithDetail("path", output)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgExported, doc.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func (a *app) newImportCmd() *cobra.Command {
	var keepExisting, overwrite bool

	cmd := &cobra.Command{
		Use:         "import <file|->",
		Short:       MsgImportShort,
		Long:        MsgImportLong,
		Example:     MsgImportExample,
		GroupID:     groupCore,
		Args:        cobra.ExactArgs(1),
		Annotations: slots("none"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.import")

			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			imported, err := aliases.Parse(data)
			if err != nil {
				return errors.Wrap(err, errors.ErrImport, MsgErrParseInput)
			}

			out := cmd.OutOrStdout()
			if imported.Len() == 0 {
				_, _ = fmt.Fprintln(out, style.Render(MsgNoAliasesInInput))
				return nil
			}

			store, err := a.store()
			if err != nil {
				return err
			}

			var resolve aliases.Resolver
			switch {
			case keepExisting:
				resolve = aliases.Always(aliases.KeepAllExisting)
			case overwrite:
				resolve = aliases.Always(aliases.UseAllImported)
			case a.resolver != nil:
				resolve = a.resolver
			default:
				resolve = promptResolver(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			summary, err := store.Import(imported, resolve)
			if err != nil {
				return err
			}

			logger.Info().
				Int("added", summary.Added).
				Int("overwritten", summary.Overwritten).
				Int("skipped", summary.Skipped).
				Int("unchanged", summary.Unchanged).
				Msg("Import finished")
			_, _ = fmt.Fprintln(out, style.Render("[success]"+summary.String()+"[/success]"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepExisting, "keep-existing", false, MsgFlagKeepExisting)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, MsgFlagOverwrite)
	cmd.MarkFlagsMutuallyExclusive("keep-existing", "overwrite")
	return cmd
}

// readInput reads a file, or stdin when name is "-"
func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrImport, MsgErrReadStdin)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrImport, MsgErrReadInput, name).
			WithDetail("path", name)
	}
	return data, nil
}

func (a *app) newCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completions <shell>",
		Short:                 MsgCompletionsShort,
		Long:                  MsgCompletionsLong,
		Example:               MsgCompletionsExample,
		DisableFlagsInUseLine: true,
		ValidArgs:             complete.DialectNames(),
		Args:                  cobra.ExactArgs(1),
		GroupID:               groupMisc,
		Annotations:           slots("shell"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := complete.ParseDialect(args[0])
			if err != nil {
				return err
			}

			script, err := complete.Emit(dialect, complete.ProgramName(a.argv0), complete.BinPath(a.argv0))
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), script)
			return err
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, version.String())
			_, _ = fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			_, _ = fmt.Fprintf(out, MsgVersionBuilt, version.Date)
		},
	}
}
