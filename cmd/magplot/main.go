package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magtools/magplot/internal/config"
	"github.com/magtools/magplot/internal/gui"
	"github.com/magtools/magplot/internal/loader"
	"github.com/magtools/magplot/internal/plot"
	"github.com/magtools/magplot/internal/viz"
)

var filename string

func main() {
	rootCmd := &cobra.Command{
		Use:   "magplot",
		Short: "plot magnetization from micromagnetic simulation exports",
		Long: "magplot reads a simulation export (.csv or extension-less OOMMF\n" +
			"table of [Rx, Ry, Rz, Mx, My, Mz] rows) and shows the in-plane\n" +
			"magnetization as a quiver over a scatter colored by Mz.",
		RunE: show,
	}

	rootCmd.Flags().StringVarP(&filename, "filename", "f", config.DefaultFilename, "input file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func show(cmd *cobra.Command, args []string) error {
	settings := config.Defaults()
	settings.Filename = filename

	fmt.Println(viz.Status.Render(fmt.Sprintf("loading %s ...", filename)))

	f, err := loader.Load(filename)
	if err != nil {
		return err
	}

	fmt.Print(viz.Summary(filename, f))

	p, err := plot.Magnetization(f)
	if err != nil {
		return err
	}

	fig, _ := gui.Magnetization(p, settings, nil, nil)
	fig.TightLayout()
	fig.Show()

	return nil
}
