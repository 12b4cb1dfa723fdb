// Package report renders a planning result as a plain-text protocol report
// for the terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/stemline-bio/mscplan/pkg/mscplan"
)

// Render writes the full report: therapy parameters, the passage schedule,
// the dose-response reference (when available) and the QC checklist.
func Render(w io.Writer, req mscplan.Request, res *mscplan.Result) {
	fmt.Fprintln(w, "MSC Expansion Plan")
	fmt.Fprintln(w, "==================")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Target dose:\t%.1f ×10⁶ cells (%.1f ×10⁶/kg × %.0f kg)\n",
		res.Target.Cells/1e6, req.DosePerKg, req.WeightKg)
	fmt.Fprintf(tw, "Collection volume:\t%.0f mL (%s)\n", res.Target.CollectionVolumeML, res.Separator.ID)
	fmt.Fprintf(tw, "Vessel type:\t%s (%.0f cm²)\n", res.Vessel.ID, res.Vessel.SurfaceCM2)
	fmt.Fprintf(tw, "Initial vessels:\t%d\n", res.Plan.InitialVessels())
	fmt.Fprintf(tw, "Passages:\t%d\n", res.Plan.Passages())
	fmt.Fprintf(tw, "Culture duration:\t%.0f days\n", res.Resources.TotalDays)
	fmt.Fprintf(tw, "Total medium:\t%.0f mL\n", res.Resources.TotalMediumML)
	if res.Resources.PrimingVolumeML > 0 {
		fmt.Fprintf(tw, "Priming volume:\t%.1f mL\n", res.Resources.PrimingVolumeML)
	}
	if res.Plan.TargetMet {
		fmt.Fprintf(tw, "Target met:\tyes (final harvest %.1f ×10⁶)\n", res.Plan.FinalOutput()/1e6)
	} else {
		fmt.Fprintf(tw, "Target met:\tNO (best attainable %.1f ×10⁶ at the search bound)\n",
			res.Plan.FinalOutput()/1e6)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Passage schedule")
	fmt.Fprintln(w, "----------------")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "passage\tvessels\tseeded ×10⁶\tharvest ×10⁶\tdays\tmedia changes")
	for _, r := range res.Plan.Records {
		fmt.Fprintf(tw, "P%d\t%d\t%.1f\t%.1f\t%.0f\t%d\n",
			r.Index, r.Vessels, r.InputCells/1e6, r.OutputCells/1e6, r.Days, r.MediaChanges)
	}
	tw.Flush()

	if ref := res.DoseReference; ref != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Reference for %s: %.1f-%.1f ×10⁶/kg, expected response %.0f-%.0f%%\n",
			ref.Label, ref.MinDose, ref.MaxDose, ref.ResponseLow, ref.ResponseHigh)
		if !ref.Contains(req.DosePerKg) {
			fmt.Fprintf(w, "Note: requested dose %.1f ×10⁶/kg is outside the recommended window\n", req.DosePerKg)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Quality control")
	fmt.Fprintln(w, "---------------")
	fmt.Fprintln(w, "- Viability >90% (Trypan Blue)")
	fmt.Fprintln(w, "- CD73+/CD90+/CD105+ >95%")
	fmt.Fprintln(w, "- CD45- <2%")
	fmt.Fprintln(w, "- Sterility testing required before release")
}
