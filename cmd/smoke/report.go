package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

type report struct {
	rows        []caseResult
	failedCount int
}

// buildReport orders results the way the cases were declared.
func buildReport(cases []smokeCase, results []caseResult) report {
	byName := make(map[string]caseResult, len(results))
	for _, res := range results {
		byName[res.Name] = res
	}

	rep := report{}
	for _, c := range cases {
		res, ok := byName[c.Name]
		if !ok {
			res = caseResult{Name: c.Name, ErrorReason: "not executed"}
		}
		if !res.Success {
			rep.failedCount++
		}
		rep.rows = append(rep.rows, res)
	}
	return rep
}

func renderReport(w io.Writer, rep report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Case", "Result", "Status", "Duration", "Reason"})
	table.SetAutoWrapText(false)

	for _, row := range rep.rows {
		result := "PASS"
		if !row.Success {
			result = "FAIL"
		}
		table.Append([]string{
			row.Name,
			result,
			strconv.Itoa(row.StatusCode),
			row.Duration.Round(time.Millisecond).String(),
			row.ErrorReason,
		})
	}
	table.Render()

	fmt.Fprintf(w, "\n%d checks, %d failed\n", len(rep.rows), rep.failedCount)
}
