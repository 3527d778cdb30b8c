package scheduler

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/specialistvlad/battlesched/internal/ctxlog"
)

// Best loads the dataset at path and returns its greedy schedule and impact.
func Best(path string) (Schedule, *big.Int, error) {
	records, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	order, impact := Greedy(records)
	return order, impact, nil
}

// Run schedules the dataset at path and prints the order and its impact to
// outW, one line each. The impact is returned to the caller.
func Run(ctx context.Context, outW io.Writer, path string) (*big.Int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading dataset.", "path", path)

	order, impact, err := Best(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Schedule computed.", "records", len(order), "impact", impact.String())

	if err := Print(outW, order, impact); err != nil {
		return nil, err
	}
	return impact, nil
}

// Print writes the order and its impact to outW, one line each.
func Print(outW io.Writer, order Schedule, impact *big.Int) error {
	if _, err := fmt.Fprintf(outW, "El orden las batallas es: %s\n", order); err != nil {
		return err
	}
	_, err := fmt.Fprintf(outW, "Coeficiente de impacto: %s\n", impact)
	return err
}
