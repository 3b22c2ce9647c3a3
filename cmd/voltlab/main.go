package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/voltlab/internal/config"
	"github.com/san-kum/voltlab/internal/metrics"
	"github.com/san-kum/voltlab/internal/report"
	"github.com/san-kum/voltlab/internal/storage"
	"github.com/san-kum/voltlab/internal/sweep"
	"github.com/san-kum/voltlab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	jsonOut    bool
	noSave     bool

	sweepPreset  string
	sweepElement string
	sweepFrom    float64
	sweepTo      float64
	sweepPoints  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voltlab",
		Short: "steady-state DC circuit lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".voltlab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a circuit and report voltages and currents",
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&configFile, "config", "", "netlist file (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "basic", "preset circuit")
	solveCmd.Flags().BoolVar(&jsonOut, "json", false, "machine-readable output")
	solveCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep an element value and plot the node voltage",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "netlist file (yaml)")
	sweepCmd.Flags().StringVar(&sweepPreset, "preset", "ramp", "preset circuit")
	sweepCmd.Flags().StringVar(&sweepElement, "element", "", "element label to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "sweep end value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", config.DefaultPoints, "sweep points")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				mode := "solve"
				if cfg.Sweep != nil {
					mode = "sweep"
				}
				fmt.Fprintf(w, "%s\t%d elements\t%s\n", name, len(cfg.Elements), mode)
			}
			return w.Flush()
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive workbench",
		RunE:  runWorkbench,
	}
	tuiCmd.Flags().StringVar(&configFile, "config", "", "netlist file (yaml)")
	tuiCmd.Flags().StringVar(&preset, "preset", "basic", "preset circuit")

	rootCmd.AddCommand(solveCmd, sweepCmd, listCmd, plotCmd, exportCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(presetName string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	cfg := config.GetPreset(presetName)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	circ, err := cfg.Build()
	if err != nil {
		return err
	}

	res, err := circ.Solve()
	if err != nil {
		return err
	}

	var rep report.Reporter
	if jsonOut {
		rep = report.NewJSON(os.Stdout)
	} else {
		rep = report.NewText(os.Stdout)
	}
	if err := rep.Report(circ, res); err != nil {
		return err
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	header := []string{"branch", "current"}
	rows := make([][]float64, len(res.Branches))
	for i, br := range res.Branches {
		rows[i] = []float64{float64(i), br.Current}
	}

	runID, err := st.Save(cfg.Name, "solve", circ.Len(), metrics.Summary(circ, res), header, rows)
	if err != nil {
		return err
	}
	if !jsonOut {
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(sweepPreset)
	if err != nil {
		return err
	}

	r := sweep.Range{Label: sweepElement, From: sweepFrom, To: sweepTo, Points: sweepPoints}
	if cfg.Sweep != nil && sweepElement == "" {
		r = sweep.Range{
			Label:  cfg.Sweep.Element,
			From:   cfg.Sweep.From,
			To:     cfg.Sweep.To,
			Points: cfg.Sweep.Points,
		}
	}
	if r.Label == "" {
		return fmt.Errorf("no sweep element: pass --element or a config with a sweep block")
	}
	if r.Points == 0 {
		r.Points = config.DefaultPoints
	}

	circ, err := cfg.Build()
	if err != nil {
		return err
	}

	series, err := sweep.Run(circ.Elements(), r)
	if err != nil {
		return err
	}

	fmt.Println(asciigraph.Plot(series.Voltages,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("node voltage vs %s (%g..%g)", r.Label, r.From, r.To)),
	))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rows := make([][]float64, len(series.Values))
	for i := range series.Values {
		rows[i] = []float64{series.Values[i], series.Voltages[i]}
	}

	runID, err := st.Save(cfg.Name, "sweep", circ.Len(), nil, []string{"value", "voltage"}, rows)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCIRCUIT\tMODE\tTIME\tELEMENTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Circuit,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Elements,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	header, rows, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 || len(header) < 2 {
		return fmt.Errorf("no data to plot in run %s", args[0])
	}

	data := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) > 1 {
			data[i] = row[1]
		}
	}

	fmt.Printf("run: %s (%s)\n\n", meta.ID, meta.Mode)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(header[1]),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runWorkbench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	circ, err := cfg.Build()
	if err != nil {
		return err
	}

	return tui.Run(cfg.Name, circ.Elements())
}
