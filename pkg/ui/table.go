package ui

import (
	"io"

	"github.com/pterm/pterm"
)

// Table writes rows under a header row. Terminal output gets pterm's
// header styling; plain output uses unstyled separators.
func Table(w io.Writer, f Format, header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)

	printer := pterm.DefaultTable.WithHasHeader().WithData(data)
	if f != FormatTerminal {
		printer = printer.
			WithStyle(pterm.NewStyle()).
			WithHeaderStyle(pterm.NewStyle()).
			WithSeparatorStyle(pterm.NewStyle())
	}
	out, err := printer.Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}
