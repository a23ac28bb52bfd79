package cli

import (
	"github.com/spf13/cobra"

	"github.com/jota0802/gs-dynamic/catalog"
	"github.com/jota0802/gs-dynamic/internal/logging"
	"github.com/jota0802/gs-dynamic/internal/report"
)

func newDatasetsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets [name]",
		Short: "List the built-in datasets, or print one as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				cat, err := catalog.Builtin(args[0])
				if err != nil {
					return err
				}
				doc, err := catalog.Marshal(cat)
				if err != nil {
					return err
				}
				_, err = out.Write(doc)

				return err
			}

			names := catalog.BuiltinNames()
			views := make([]report.DatasetView, 0, len(names))
			for _, name := range names {
				cat, err := catalog.Builtin(name)
				if err != nil {
					return err
				}
				views = append(views, report.NewDatasetView(cat))
			}
			a.log.V(logging.DEBUG).Info("listing datasets", "count", len(views))

			return report.WriteDatasets(out, a.format, views)
		},
	}
}
