package commands

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

// compiledQuery is the JSON shape of one compiled breakpoint.
type compiledQuery struct {
	Name  string  `json:"name"`
	Width *string `json:"width"`
	Lower *string `json:"lower"`
	Upper *string `json:"upper"`
	Unit  string  `json:"unit"`
	Media string  `json:"media"`
}

func compileCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Print the media query compiled for each breakpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			queries, err := compileFile(cfg)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]compiledQuery, len(queries))
				for i, q := range queries {
					out[i] = compiledQuery{
						Name:  q.Breakpoint.Name,
						Width: finite(q.Breakpoint.Width),
						Lower: finite(q.Lower),
						Upper: finite(q.Upper),
						Unit:  string(q.Unit),
						Media: q.Media,
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, q := range queries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", q.Breakpoint.Name, q.Media)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

// finite formats w, or returns nil for an infinite bound, which JSON cannot
// represent as a number.
func finite(w float64) *string {
	if math.IsInf(w, 0) {
		return nil
	}
	s := model.FormatWidth(w)
	return &s
}
