package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-nwbext/pkg/profiles"
)

// ListCmd prints the registered profiles.
type ListCmd struct{}

func (c *ListCmd) Run(out io.Writer, registry *profiles.Registry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tTYPES\tSUMMARY")
	for _, profile := range registry.Profiles() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", profile.Name, strings.Join(profile.TypeNames(), ","), profile.Summary)
	}
	return w.Flush()
}
