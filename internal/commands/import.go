package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/financely/financely/internal/importer"
	"github.com/financely/financely/internal/snapshot"
)

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import CSV files waiting in import/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}

			reg := importer.DefaultRegistry()
			p := reg.Get(format)
			if p == nil {
				formats := reg.Formats()
				sort.Strings(formats)
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(formats, ", "))
			}

			files, err := importer.Scan(ws.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				dst := filepath.Join(ws.dir, snapshot.TransactionsDir, strings.ToLower(f.Name))
				if _, err := os.Stat(dst); err == nil {
					return fmt.Errorf("%s was already imported to %s", f.Name, dst)
				}

				n, err := importer.ImportFile(p, f, dst)
				if err != nil {
					return err
				}
				if err := importer.MarkProcessed(ws.dir, f.Name); err != nil {
					return err
				}
				ws.logger.Info("imported file", "file", f.Name, "format", p.Format(), "transactions", n)
				fmt.Fprintf(out, "Imported %d transactions from %s\n", n, f.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "financely", "CSV format of the files in import/ (financely, chase)")

	return cmd
}
