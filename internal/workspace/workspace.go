// Package workspace opens the translation projects described by a project
// file and links them to their parents.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	i18n "github.com/lifei6671/i18nproject"
	"github.com/lifei6671/i18nproject/internal/config"
	"github.com/lifei6671/i18nproject/sqlstore"
)

// Workspace holds the opened projects by id.
type Workspace struct {
	Projects map[string]*i18n.Project
	// Order lists the project ids with parents first.
	Order []string

	stores []*sqlstore.Store
}

// Open builds every project of cfg. reg may be nil.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Workspace, error) {
	ordered, err := cfg.Ordered()
	if err != nil {
		return nil, err
	}
	ws := &Workspace{Projects: make(map[string]*i18n.Project, len(ordered))}
	for _, pc := range ordered {
		p := i18n.NewProject(pc.ID,
			i18n.WithLogger(logger),
			i18n.WithRegisterer(reg),
			i18n.WithConfig(i18n.Config{
				DevelopmentLanguage: pc.DevelopmentLanguage,
				HostLanguage:        cfg.HostLanguage,
			}),
		)
		if err := ws.attach(ctx, p, pc); err != nil {
			ws.Close()
			return nil, fmt.Errorf("project %s: %w", pc.ID, err)
		}
		if pc.Parent != "" {
			if err := p.SetParent(ws.Projects[pc.Parent]); err != nil {
				ws.Close()
				return nil, fmt.Errorf("project %s: %w", pc.ID, err)
			}
		}
		ws.Projects[pc.ID] = p
		ws.Order = append(ws.Order, pc.ID)
	}
	return ws, nil
}

func (ws *Workspace) attach(ctx context.Context, p *i18n.Project, pc config.Project) error {
	var opts []i18n.MemoryOption
	if pc.ReadOnly {
		opts = append(opts, i18n.WithReadOnly(true))
	}
	switch pc.Driver {
	case config.DriverYAML:
		_, err := p.LoadYAMLDir(pc.Dir, opts...)
		return err
	case config.DriverSqlite3:
		store, err := sqlstore.Open(config.DriverSqlite3, pc.DSN)
		if err != nil {
			return err
		}
		ws.stores = append(ws.stores, store)
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		resources, err := store.Resources(ctx, opts...)
		if err != nil {
			return err
		}
		var errs []error
		for _, r := range resources {
			errs = append(errs, p.AddResource(r))
		}
		return errors.Join(errs...)
	}
	return fmt.Errorf("unknown driver %q", pc.Driver)
}

// Project returns the project with the given id.
func (ws *Workspace) Project(id string) (*i18n.Project, error) {
	p, ok := ws.Projects[id]
	if !ok {
		return nil, fmt.Errorf("unknown project %q", id)
	}
	return p, nil
}

// Close detaches the projects and closes the databases.
func (ws *Workspace) Close() error {
	for i := len(ws.Order) - 1; i >= 0; i-- {
		ws.Projects[ws.Order[i]].Close()
	}
	var errs []error
	for _, s := range ws.stores {
		errs = append(errs, s.Close())
	}
	ws.stores = nil
	return errors.Join(errs...)
}
