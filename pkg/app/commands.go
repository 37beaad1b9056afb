package app

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// WriteRoutes prints every named route as a table.
func (a *Application) WriteRoutes(w io.Writer) error {
	infos := a.router().Routes()
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No routes registered.")
		return err
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].Path != infos[j].Path {
			return infos[i].Path < infos[j].Path
		}
		return infos[i].Method < infos[j].Method
	})

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH\tNAME")
	fmt.Fprintln(tw, "------\t----\t----")
	for _, ri := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
	}
	return tw.Flush()
}
