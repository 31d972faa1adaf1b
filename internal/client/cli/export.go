package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/dmitrijs2005/moodkeeper/internal/client/stats"
	"github.com/dmitrijs2005/moodkeeper/internal/filex"
)

// Export writes the account and all its entries to
// <dir>/moodkeeper-export-<today>.json. An empty dir means the configured
// export directory.
func (a *App) Export(ctx context.Context, dir string) error {
	u, ok, err := a.requireUser(ctx)
	if !ok {
		return err
	}
	if dir == "" {
		dir = a.config.ExportDir
	}

	now := a.now()
	data, err := services.BuildExport(u, a.journal, now)
	if err != nil {
		return a.report(ctx, err)
	}

	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return a.report(ctx, err)
	}
	path := filepath.Join(abs, services.ExportFileName(stats.Today(now)))
	if err := filex.WriteFileAtomic(path, data); err != nil {
		return a.report(ctx, err)
	}

	a.log.Info(ctx, "export written", "user_id", u.ID, "path", path, "entries", len(a.journal))
	a.alerts.show(fmt.Sprintf("Export saved to %s", path))
	return nil
}
