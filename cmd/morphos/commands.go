package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pedrohavay/morphos/russian"
)

func newInflectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inflect NAME...",
		Short: "Inflect full names into one case, or into all six",
		Long: `Inflects names given as "Имя", "Фамилия Имя" or "Фамилия Имя Отчество".
Without --case every case is printed. Gender is detected unless --gender is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			caseID, _ := cmd.Flags().GetString("case")
			var c russian.Case
			if caseID != "" {
				var err error
				if c, err = russian.ParseCase(caseID); err != nil {
					return err
				}
			}
			g := a.cfg.gender()
			failed := 0
			for _, name := range args {
				if caseID != "" {
					s, ok := a.engine.InflectName(name, c, g)
					if !ok {
						logger.Warn("unsupported name shape", zap.String("name", name))
						failed++
						continue
					}
					fmt.Fprintln(out, s)
					continue
				}
				forms, ok := a.engine.NameCases(name, g)
				if !ok {
					logger.Warn("unsupported name shape", zap.String("name", name))
					failed++
					continue
				}
				writeForms(out, forms)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d names could not be inflected", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringP("case", "c", "", "case to inflect into, e.g. genitive or родительный")
	cmd.Flags().StringP("gender", "g", "", "gender of the owner: male, female or empty to detect")
	return cmd
}

func newCasesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases [NAME...]",
		Short: "Emit declension records for names from arguments or stdin",
		Long: `Reads names from arguments, or one per line from stdin, and writes a
declension record for each in the configured format (text, json, jsonl, csv, msgpack).
Names that cannot be inflected are skipped with a warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				var err error
				if names, err = readNames(cmd.InOrStdin(), a.cfg.Encoding); err != nil {
					return err
				}
			}
			ds, err := inflectBatch(cmd.Context(), a.engine, names, a.cfg.gender())
			if err != nil {
				return err
			}
			return writeDeclensions(cmd.OutOrStdout(), a.cfg.Format, ds)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text, json, jsonl, csv, msgpack")
	cmd.Flags().StringP("gender", "g", "", "gender of the owner: male, female or empty to detect")
	return cmd
}

func newGenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gender NAME...",
		Short: "Detect the gender of each name's owner",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				g := a.engine.DetectGender(name)
				logger.Debug("gender detected", zap.String("name", name), zap.Stringer("gender", g))
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", russian.Normalize(name), g)
			}
			return nil
		},
	}
}

func newPluralizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pluralize COUNT WORD",
		Short: "Agree a noun with a count: 5 стол -> 5 столов",
		Long:  "Count and word may be given in either order.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, word, err := russian.ParseCountWord(args[0], args[1])
			if err != nil {
				return err
			}
			animate, _ := cmd.Flags().GetBool("animate")
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.Pluralize(n, word, animate))
			return nil
		},
	}
	cmd.Flags().BoolP("animate", "a", false, "the noun names a living being")
	return cmd
}

// readNames returns the non-blank lines of r.
func readNames(r io.Reader, enc string) ([]string, error) {
	in, err := decodeInput(r, enc)
	if err != nil {
		return nil, err
	}
	var names []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			names = append(names, line)
		}
	}
	return names, sc.Err()
}

// inflectBatch builds declension records concurrently; output order follows names.
func inflectBatch(ctx context.Context, e *russian.Engine, names []string, g russian.Gender) ([]russian.Declension, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]russian.Declension, len(names))
	ok := make([]bool, len(names))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		i, name := i, name
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i], ok[i] = e.Declension(name, g)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	kept := out[:0]
	for i, d := range out {
		if !ok[i] {
			logger.Warn("unsupported name shape", zap.String("name", names[i]))
			continue
		}
		kept = append(kept, d)
	}
	return kept, nil
}

func writeDeclensions(w io.Writer, format string, ds []russian.Declension) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	case "jsonl":
		return russian.WriteDeclensionsJSONL(w, ds)
	case "csv":
		return russian.WriteDeclensionsCSV(w, ds)
	case "msgpack":
		return russian.WriteDeclensionsMsgpack(w, ds)
	}
	bw := bufio.NewWriter(w)
	for _, d := range ds {
		fmt.Fprintf(bw, "%s (%s)\n", d.Name, d.Gender)
		writeForms(bw, d.Cases)
	}
	return bw.Flush()
}

func writeForms(w io.Writer, forms russian.CaseForms) {
	for _, c := range russian.Cases {
		fmt.Fprintf(w, "  %-13s %s\n", c, forms[c])
	}
}
