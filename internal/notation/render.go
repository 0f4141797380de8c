package notation

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteSteps renders steps as an aligned table with a 1-based step column.
func WriteSteps(w io.Writer, steps []Step) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "STEP\tSCANNED\tSTACK\tPOSTFIX\tACTION")
	for i, s := range steps {
		fmt.Fprintf(tw, "%d\t%s\t[%s]\t%s\t%s\n",
			i+1, s.ScannedChar, strings.Join(s.Stack, ", "), s.Postfix, s.Action)
	}

	return tw.Flush()
}
