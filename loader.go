package i18n

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// yamlFile is the layout of a translation file:
//
//	language: de_CH
//	messages:
//	  user.login.success: Willkommen
type yamlFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// YAMLResource is a Resource stored in one YAML file. Changes are written
// back by CommitChanges and by flushing updates.
type YAMLResource struct {
	*MemoryResource
	path string

	wmu sync.Mutex // serializes file writes
}

// LoadYAMLFile reads a translation file. A file without write permission
// gives a read-only resource.
func LoadYAMLFile(path string, opts ...MemoryOption) (*YAMLResource, error) {
	yf, err := readYAMLFile(path)
	if err != nil {
		return nil, err
	}
	lang, err := ParseLanguage(yf.Language)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	r := &YAMLResource{path: path}
	opts = append([]MemoryOption{
		WithReadOnly(info.Mode().Perm()&0o200 == 0),
		WithCommitter(CommitterFunc(r.write)),
	}, opts...)
	r.MemoryResource = NewMemoryResource(lang, yf.Messages, opts...)
	return r, nil
}

func readYAMLFile(path string) (*yamlFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yf yamlFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if yf.Language == "" {
		return nil, fmt.Errorf("file %s missing 'language' field", path)
	}
	return &yf, nil
}

func (r *YAMLResource) Path() string { return r.path }

// Reload re-reads the file and reports the differences to the listeners as
// one change. Keys with uncommitted edits are left as edited.
func (r *YAMLResource) Reload() error {
	yf, err := readYAMLFile(r.path)
	if err != nil {
		return err
	}
	lang, err := ParseLanguage(yf.Language)
	if err != nil {
		return fmt.Errorf("file %s: %w", r.path, err)
	}
	if lang != r.Language() {
		return fmt.Errorf("file %s: language changed from %s to %s", r.path, r.Language(), lang)
	}
	r.Replace(yf.Messages)
	return nil
}

// write replaces the file atomically with the current texts.
func (r *YAMLResource) write(_ context.Context, lang Language, texts map[string]string, _ []string) error {
	r.wmu.Lock()
	defer r.wmu.Unlock()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlFile{Language: lang.String(), Messages: texts}); err != nil {
		return fmt.Errorf("yaml marshal %s: %w", r.path, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "."+filepath.Base(r.path)+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

// LoadYAMLDir 从目录中加载所有 `.yaml/.yml` 文件
// 例如: ./locales/en.yaml, ./locales/de_CH.yaml
func LoadYAMLDir(dir string, opts ...MemoryOption) ([]*YAMLResource, error) {
	var out []*YAMLResource
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}
		r, err := LoadYAMLFile(path, opts...)
		if err != nil {
			return fmt.Errorf("loadYAMLFile %s: %w", path, err)
		}
		out = append(out, r)
		return nil
	})
	return out, err
}

func isYAML(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

// LoadYAMLDir attaches every translation file of dir to p.
func (p *Project) LoadYAMLDir(dir string, opts ...MemoryOption) ([]*YAMLResource, error) {
	resources, err := LoadYAMLDir(dir, opts...)
	if err != nil {
		return nil, err
	}
	var errs []error
	added := make([]*YAMLResource, 0, len(resources))
	for _, r := range resources {
		if err := p.AddResource(r); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Path(), err))
			continue
		}
		added = append(added, r)
	}
	return added, errors.Join(errs...)
}

// MustLoadYAMLDir 版本，在初始化阶段直接 panic
func (p *Project) MustLoadYAMLDir(dir string) []*YAMLResource {
	resources, err := p.LoadYAMLDir(dir)
	if err != nil {
		panic(err)
	}
	return resources
}
