package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lion-city/sgagents/pkg/protocol"
)

func newAgentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp protocol.AgentsResponse
			if err := apiGet("/api/v1/agents", &resp); err != nil {
				return err
			}

			if len(resp.Agents) == 0 {
				fmt.Println("No agents registered.")
				return nil
			}

			ids := make([]string, 0, len(resp.Agents))
			for id := range resp.Agents {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTRUST\tCAPABILITIES")
			for _, id := range ids {
				a := resp.Agents[id]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					a.ID, a.Name, a.TrustLevel,
					strings.Join(a.Capabilities, ", "),
				)
			}
			w.Flush()
			return nil
		},
	}
}
