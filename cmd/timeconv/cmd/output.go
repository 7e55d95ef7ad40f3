package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rodaine/table"

	"github.com/msto63/timeconv/foundation/core/config"
)

type field struct {
	Name  string
	Value string
}

// writeResult prints fields in the configured output mode. Text mode prints
// a lone value bare and several values as "name: value" lines.
func (a *App) writeResult(w io.Writer, fields ...field) {
	if a.cfg.Time.Output == config.OutputTable {
		writeTable(w, fields)
		return
	}

	if len(fields) == 1 {
		fmt.Fprintln(w, fields[0].Value)
		return
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f.Name, f.Value)
	}
}

func writeTable(w io.Writer, fields []field) {
	tbl := table.New("FIELD", "VALUE").WithWriter(w)
	for _, f := range fields {
		tbl.AddRow(f.Name, f.Value)
	}
	tbl.Print()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
