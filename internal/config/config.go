/*
Package config implements the TOML project file of the i18nlint tool.

A project file lists the translation projects, where their translations
are stored and which project each one inherits from:

	host_language = "en"

	[[project]]
	id = "base"
	driver = "yaml"
	dir = "locales/base"

	[[project]]
	id = "app"
	parent = "base"
	driver = "sqlite3"
	dsn = "app.db"
*/
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DriverYAML    = "yaml"
	DriverSqlite3 = "sqlite3"
)

// Config represents a parsed project file.
type Config struct {
	HostLanguage string    `toml:"host_language"`
	Projects     []Project `toml:"project"`
}

// Project describes one translation project.
type Project struct {
	ID     string `toml:"id"`
	Parent string `toml:"parent"`
	// Must be one of DriverYAML, DriverSqlite3
	Driver string `toml:"driver"`
	// Directory of the YAML files when driver is yaml
	Dir string `toml:"dir"`
	// Data source name when driver is sqlite3
	DSN                 string `toml:"dsn"`
	DevelopmentLanguage string `toml:"development_language"`
	ReadOnly            bool   `toml:"read_only"`
}

func (c *Config) valid() error {
	if len(c.Projects) == 0 {
		return errors.New("config: no project defined")
	}
	ids := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		if p.ID == "" {
			return errors.New("config: missing project.id value")
		}
		if ids[p.ID] {
			return fmt.Errorf("config: duplicate project id %q", p.ID)
		}
		ids[p.ID] = true
	}
	for _, p := range c.Projects {
		switch p.Driver {
		case DriverYAML:
			if p.Dir == "" {
				return fmt.Errorf("config: project %q: missing dir value", p.ID)
			}
		case DriverSqlite3:
			if p.DSN == "" {
				return fmt.Errorf("config: project %q: missing dsn value", p.ID)
			}
		default:
			drivers := []string{DriverYAML, DriverSqlite3}
			return fmt.Errorf("config: project %q: invalid driver value. (Must be one of: '%v')", p.ID, strings.Join(drivers, ", "))
		}
		if p.Parent != "" && !ids[p.Parent] {
			return fmt.Errorf("config: project %q: unknown parent %q", p.ID, p.Parent)
		}
	}
	_, err := c.Ordered()
	return err
}

// Ordered returns the projects with every parent before its children.
func (c *Config) Ordered() ([]Project, error) {
	byID := make(map[string]Project, len(c.Projects))
	for _, p := range c.Projects {
		byID[p.ID] = p
	}
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(c.Projects))
	out := make([]Project, 0, len(c.Projects))
	var visit func(p Project) error
	visit = func(p Project) error {
		switch state[p.ID] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("config: project %q: parent cycle", p.ID)
		}
		state[p.ID] = visiting
		if parent, ok := byID[p.Parent]; ok && p.Parent != "" {
			if err := visit(parent); err != nil {
				return err
			}
		}
		state[p.ID] = done
		out = append(out, p)
		return nil
	}
	for _, p := range c.Projects {
		if err := visit(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Project returns the project with the given id.
func (c *Config) Project(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func defaults() Config {
	return Config{HostLanguage: "en"}
}

// Load reads a project file and checks its validity. Relative dir and dsn
// values are resolved against the directory of the file.
func Load(file string) (Config, error) {
	conf := defaults()
	if _, err := toml.DecodeFile(file, &conf); err != nil {
		return conf, err
	}
	base := filepath.Dir(file)
	for i := range conf.Projects {
		p := &conf.Projects[i]
		if p.Driver == "" {
			p.Driver = DriverYAML
		}
		if p.Dir != "" && !filepath.IsAbs(p.Dir) {
			p.Dir = filepath.Join(base, filepath.FromSlash(p.Dir))
		}
		if p.Driver == DriverSqlite3 && p.DSN != "" && p.DSN != ":memory:" &&
			!strings.HasPrefix(p.DSN, "file:") && !filepath.IsAbs(p.DSN) {
			p.DSN = filepath.Join(base, filepath.FromSlash(p.DSN))
		}
	}
	if err := conf.valid(); err != nil {
		return conf, err
	}
	return conf, nil
}
