package cli

import (
	"fmt"

	"github.com/layoutlab/nodekit/internal/catalog"
	"github.com/layoutlab/nodekit/internal/config"
	"github.com/layoutlab/nodekit/internal/nodes"
	"github.com/layoutlab/nodekit/internal/plugin"
)

// session wires the kind table, catalog, and plugin host for one command.
type session struct {
	settings   *config.Settings
	shortcuts  *config.ShortcutStore
	factory    *nodes.Factory
	catalog    *catalog.Catalog
	host       *plugin.Host
	pluginsDir string
	failures   []plugin.Failure
}

func newSession(settings *config.Settings, dirOverride string) (*session, error) {
	shortcuts := settings.Shortcuts()
	factory := nodes.NewFactory(nodes.NewTable())
	cat := catalog.New(factory, shortcuts)
	host := plugin.NewHost(cat, shortcuts, buildVersion)

	dir := dirOverride
	if dir == "" {
		d, err := settings.PluginsDir()
		if err != nil {
			return nil, fmt.Errorf("resolving plugins directory: %w", err)
		}
		dir = d
	}

	failures, err := host.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading plugins: %w", err)
	}

	return &session{
		settings:   settings,
		shortcuts:  shortcuts,
		factory:    factory,
		catalog:    cat,
		host:       host,
		pluginsDir: dir,
		failures:   failures,
	}, nil
}
