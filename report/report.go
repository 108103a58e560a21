// Package report renders a completed simulation run to the terminal.
// Grounded on wbrown-janus-datalog's table_formatter.go (tablewriter +
// fatih/color): pure presentation over an already-computed engine.Result,
// no simulation logic.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/andrew-eldridge/simux/engine"
)

var aggregateColor = color.New(color.FgHiCyan, color.Bold)

// WriteEntityTable renders the per-entity metrics table (spec.md §6 schema)
// to w, followed by the run's aggregate totals.
func WriteEntityTable(w io.Writer, result *engine.Result) {
	table := tablewriter.NewTable(w)
	table.Header([]string{
		"Entity Type", "Created", "Disposed", "Value-Added", "Non-Value-Added",
		"Wait", "Transfer", "Other", "Time in System",
	})

	for _, row := range result.Rows {
		table.Append([]string{
			row.EntityType,
			formatPtr(row.Created),
			formatPtr(row.Disposed),
			fmt.Sprintf("%.2f", row.ValueAdded),
			fmt.Sprintf("%.2f", row.NonValueAdded),
			fmt.Sprintf("%.2f", row.Wait),
			fmt.Sprintf("%.2f", row.Transfer),
			fmt.Sprintf("%.2f", row.Other),
			formatPtr(row.TimeInSystem),
		})
	}
	table.Render()

	aggregateColor.Fprintf(w, "Total Entity System Time: %.2f   Average Entity System Time: %.2f\n",
		result.State.Metrics.TotalEntitySystemTime, result.State.Metrics.AverageEntitySystemTime)
}

// WriteResourceTable renders per-resource utilization at the run's horizon.
func WriteResourceTable(w io.Writer, result *engine.Result, duration float64) {
	table := tablewriter.NewTable(w)
	table.Header([]string{"Resource", "Capacity", "Utilization"})

	for _, r := range result.Resources {
		table.Append([]string{
			r.Name,
			fmt.Sprintf("%d", r.Capacity),
			fmt.Sprintf("%.2f%%", r.CalcUtilization(duration)*100),
		})
	}
	table.Render()
}

func formatPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
