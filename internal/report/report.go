// Package report renders solved circuits for humans and machines. The
// solver core produces a structured result; formatting lives here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/voltlab/internal/circuit"
	"github.com/san-kum/voltlab/internal/metrics"
)

// Reporter renders a solved circuit.
type Reporter interface {
	Report(c *circuit.Circuit, res *circuit.Result) error
}

// Text writes a styled, tab-aligned report.
type Text struct {
	Out io.Writer
}

func NewText(out io.Writer) *Text {
	return &Text{Out: out}
}

func (t *Text) Report(c *circuit.Circuit, res *circuit.Result) error {
	fmt.Fprintln(t.Out, headerStyle.Render("node voltages"))
	w := tabwriter.NewWriter(t.Out, 0, 0, 2, ' ', 0)
	for i, v := range res.Voltages {
		fmt.Fprintf(w, "%s\t%s\n",
			labelStyle.Render(fmt.Sprintf("node %d", i)),
			valueStyle.Render(fmt.Sprintf("%.6g V", v)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(res.Branches) > 0 {
		fmt.Fprintln(t.Out)
		fmt.Fprintln(t.Out, headerStyle.Render("branch currents"))
		w = tabwriter.NewWriter(t.Out, 0, 0, 2, ' ', 0)
		for _, br := range res.Branches {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				labelStyle.Render(br.Label),
				labelStyle.Render(br.Kind.String()),
				valueStyle.Render(fmt.Sprintf("%.6g A", br.Current)))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	sum := metrics.Summary(c, res)
	fmt.Fprintln(t.Out)
	fmt.Fprintln(t.Out, headerStyle.Render("metrics"))
	w = tabwriter.NewWriter(t.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n",
		labelStyle.Render("dissipated power"),
		valueStyle.Render(fmt.Sprintf("%.6g W", sum["dissipated_power"])))
	fmt.Fprintf(w, "%s\t%s\n",
		labelStyle.Render("source power"),
		valueStyle.Render(fmt.Sprintf("%.6g W", sum["source_power"])))
	fmt.Fprintf(w, "%s\t%s\n",
		labelStyle.Render("kcl residual"),
		valueStyle.Render(fmt.Sprintf("%.3g A", sum["kcl_residual"])))
	if err := w.Flush(); err != nil {
		return err
	}

	if sum["kcl_residual"] > 1e-9 {
		fmt.Fprintln(t.Out, warnStyle.Render("warning: current balance residual exceeds tolerance"))
	}

	return nil
}

// JSON writes the structured result directly, for scripting.
type JSON struct {
	Out io.Writer
}

func NewJSON(out io.Writer) *JSON {
	return &JSON{Out: out}
}

type jsonReport struct {
	Voltages []float64          `json:"voltages"`
	Branches []circuit.Branch   `json:"branches"`
	Metrics  map[string]float64 `json:"metrics"`
}

func (j *JSON) Report(c *circuit.Circuit, res *circuit.Result) error {
	enc := json.NewEncoder(j.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Voltages: res.Voltages,
		Branches: res.Branches,
		Metrics:  metrics.Summary(c, res),
	})
}
