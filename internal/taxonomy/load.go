package taxonomy

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"jobads/internal/core/domain"
)

// embedded holds the tables shipped with the binary.
//
//go:embed tables/*.yaml
var embedded embed.FS

type entryFile struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type tableFile struct {
	Platform   string                 `yaml:"platform"`
	Industries map[string][]entryFile `yaml:"industries"`
	Skills     map[string][]entryFile `yaml:"skills"`
	Seniority  map[string][]entryFile `yaml:"seniority"`
	Locations  map[string]entryFile   `yaml:"locations"`
	Regions    map[string][]string    `yaml:"regions"`
}

// Default loads the embedded tables.
func Default() (*Tables, error) {
	sub, err := fs.Sub(embedded, "tables")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir loads every *.yaml file in dir.
func LoadDir(dir string) (*Tables, error) {
	return LoadFS(os.DirFS(dir))
}

// Source returns the loader for dir, or for the embedded tables when dir is
// empty.
func Source(dir string) Loader {
	if dir == "" {
		return Default
	}
	return func() (*Tables, error) { return LoadDir(dir) }
}

// LoadFS builds a Tables snapshot from the *.yaml files at the root of fsys.
// A file either declares a platform table or a regions map. Every entry
// must carry an id and a name; a platform may be declared once.
func LoadFS(fsys fs.FS) (*Tables, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no taxonomy tables found")
	}
	sort.Strings(names)

	t := &Tables{
		platforms: make(map[domain.Platform]*platformTable),
		regions:   make(map[string][]string),
	}
	hash := sha256.New()
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		hash.Write([]byte(path.Base(name)))
		hash.Write(data)

		var f tableFile
		if err = yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		if err = t.add(f); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	t.version = hex.EncodeToString(hash.Sum(nil))[:12]
	return t, nil
}

func (t *Tables) add(f tableFile) error {
	for code, members := range f.Regions {
		code = normaliseLocation(code)
		if _, dup := t.regions[code]; dup {
			return fmt.Errorf("region %s declared twice", code)
		}
		countries := make([]string, 0, len(members))
		for _, m := range members {
			countries = append(countries, normaliseLocation(m))
		}
		t.regions[code] = countries
	}
	if f.Platform == "" {
		return nil
	}

	p, err := domain.ParsePlatform(f.Platform)
	if err != nil {
		return err
	}
	if _, dup := t.platforms[p]; dup {
		return fmt.Errorf("platform %s declared twice", p)
	}
	tbl := &platformTable{locations: make(map[string]entry, len(f.Locations))}
	if tbl.industries, err = convert(f.Industries, strings.TrimSpace); err != nil {
		return fmt.Errorf("industries: %w", err)
	}
	if tbl.skills, err = convert(f.Skills, normaliseSkill); err != nil {
		return fmt.Errorf("skills: %w", err)
	}
	if tbl.seniority, err = convert(f.Seniority, strings.TrimSpace); err != nil {
		return fmt.Errorf("seniority: %w", err)
	}
	for code, e := range f.Locations {
		if e.ID == "" || e.Name == "" {
			return fmt.Errorf("locations: %s: id and name are required", code)
		}
		tbl.locations[normaliseLocation(code)] = entry{ID: e.ID, Name: e.Name}
	}
	t.platforms[p] = tbl
	return nil
}

func convert(in map[string][]entryFile, normalise func(string) string) (map[string][]entry, error) {
	out := make(map[string][]entry, len(in))
	for code, entries := range in {
		key := normalise(code)
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("code %q declared twice", key)
		}
		converted := make([]entry, 0, len(entries))
		for _, e := range entries {
			if e.ID == "" || e.Name == "" {
				return nil, fmt.Errorf("%s: id and name are required", code)
			}
			converted = append(converted, entry{ID: e.ID, Name: e.Name})
		}
		out[key] = converted
	}
	return out, nil
}
