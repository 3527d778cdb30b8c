package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/battlesched/internal/fit"
)

// PrintCoefficients writes one line per fitted model:
//
//	Coeficientes ajuste O(n): [a b]
func PrintCoefficients(w io.Writer, result *fit.Result) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, m := range result.Models() {
		if _, err := fmt.Fprintf(w, "Coeficientes ajuste %s: [%g %g]\n", m.Growth.Label, m.A, m.B); err != nil {
			return err
		}
	}
	return nil
}
