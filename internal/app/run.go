package app

import (
	"context"
	"fmt"

	"github.com/vk/supertoml/internal/ctxlog"
	"github.com/vk/supertoml/internal/formatter"
	"github.com/vk/supertoml/internal/resolver"
)

// Run executes one resolve invocation and writes the formatted result.
// Nothing is written to the output writer unless resolution fully succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	values, err := a.resolver.Resolve(ctx, resolver.Request{
		FilePath:     a.config.FilePath,
		Table:        a.config.Table,
		OutputFormat: a.config.OutputFormat,
	})
	if err != nil {
		return err
	}
	a.logger.Debug("Table resolved.", "table", a.config.Table, "values", len(values))

	rendered, err := formatter.Render(a.config.OutputFormat, values)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.outW, rendered)
	a.logger.Debug("App.Run method finished.")
	return nil
}
