package tables

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

//go:embed defaults
var embedded embed.FS

// Defaults returns the built-in table definitions
func Defaults() fs.FS {
	sub, err := fs.Sub(embedded, "defaults")
	if err != nil {
		panic(err) // the embed directive guarantees the directory
	}
	return sub
}

// endTypeStem is the file stem of a family's end-type table
const endTypeStem = "endtypes"

// Registry holds the end-type and enumeration tables of every spring family.
// It is populated once by Load and only changes on Reload or Clear.
type Registry struct {
	fsys fs.FS
	dir  string // on-disk root, empty for embedded tables
	log  zerolog.Logger

	mu       sync.RWMutex
	loaded   bool
	endTypes map[Family]*EndTypeTable
	enums    map[Family]map[string]*EnumTable
}

// NewRegistry creates a registry reading tables from fsys
func NewRegistry(fsys fs.FS, log zerolog.Logger) *Registry {
	return &Registry{
		fsys:     fsys,
		log:      log,
		endTypes: make(map[Family]*EndTypeTable),
		enums:    make(map[Family]map[string]*EnumTable),
	}
}

// Open creates and loads a registry from dir, or from the built-in tables when
// dir is empty.
func Open(dir string, log zerolog.Logger) (*Registry, error) {
	if dir == "" {
		r := NewRegistry(Defaults(), log)
		r.Load()
		return r, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open tables dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open tables dir: %s is not a directory", dir)
	}
	r := NewRegistry(os.DirFS(dir), log)
	r.dir = dir
	r.Load()
	return r, nil
}

// Dir returns the on-disk table directory, or "" for built-in tables
func (r *Registry) Dir() string {
	return r.dir
}

// Load reads every family's tables. Missing or malformed files leave an empty
// table behind and are logged, never returned.
func (r *Registry) Load() {
	endTypes := make(map[Family]*EndTypeTable, len(Families))
	enums := make(map[Family]map[string]*EnumTable, len(Families))

	for _, f := range Families {
		et, named := r.loadFamily(f)
		endTypes[f] = et
		named[EndTypeEnum] = et.Enum()
		enums[f] = named
	}

	r.mu.Lock()
	r.endTypes = endTypes
	r.enums = enums
	r.loaded = true
	r.mu.Unlock()
}

func (r *Registry) loadFamily(f Family) (*EndTypeTable, map[string]*EnumTable) {
	named := make(map[string]*EnumTable)
	endTypes := &EndTypeTable{Name: EndTypeHeader, Values: map[string]map[string]any{}}

	entries, err := fs.ReadDir(r.fsys, f.Dir())
	if err != nil {
		r.log.Warn().Err(err).Str("family", string(f)).Msg("No table directory for spring family")
		return endTypes, named
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".json" && ext != ".csv" {
			continue
		}
		stem := strings.TrimSuffix(name, path.Ext(name))
		file := path.Join(f.Dir(), name)

		rows, err := ReadRows(r.fsys, file)
		if err != nil {
			r.log.Warn().Err(err).Str("file", file).Msg("Skipping unreadable table")
			continue
		}

		if stem == endTypeStem {
			t, err := ParseEndTypeTable(rows)
			if err != nil {
				r.log.Warn().Err(err).Str("file", file).Msg("Skipping malformed end-type table")
				continue
			}
			endTypes = t
			continue
		}

		e, err := ParseEnumTable(stem, rows)
		if err != nil {
			r.log.Warn().Err(err).Str("file", file).Msg("Skipping malformed enumeration table")
			continue
		}
		named[stem] = e
	}

	r.log.Debug().
		Str("family", string(f)).
		Int("end_types", len(endTypes.Options)).
		Int("enums", len(named)).
		Msg("Loaded spring tables")

	return endTypes, named
}

// Clear drops every cached table. Lookups return empty tables until the next
// Load.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.endTypes = make(map[Family]*EndTypeTable)
	r.enums = make(map[Family]map[string]*EnumTable)
	r.loaded = false
	r.mu.Unlock()
}

// Reload loads the tables again. The new tables replace the old ones in one
// step, so readers never observe an empty registry.
func (r *Registry) Reload() {
	r.Load()
}

// Loaded reports whether Load has populated the registry
func (r *Registry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// EndTypes returns the end-type table of a family. It never returns nil.
func (r *Registry) EndTypes(f Family) *EndTypeTable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.endTypes[f]; ok {
		return t
	}
	return &EndTypeTable{Name: EndTypeHeader, Values: map[string]map[string]any{}}
}

// Enum returns the named enumeration of a family. It never returns nil.
func (r *Registry) Enum(f Family, name string) *EnumTable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.enums[f][name]; ok {
		return e
	}
	return &EnumTable{Name: name}
}

// EnumNames returns the sorted enumeration names known for a family
func (r *Registry) EnumNames(f Family) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.enums[f]))
	for n := range r.enums[f] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Index resolves a selection to its 1-based position in the family's
// enumeration. Unknown families, enumerations and values resolve to 0.
func (r *Registry) Index(f Family, enum, value string) int {
	return r.Enum(f, enum).Index(value)
}

// Option returns the option at a 1-based index, or "" when out of range
func (r *Registry) Option(f Family, enum string, index int) string {
	opts := r.Enum(f, enum).Options()
	if index < 1 || index > len(opts) {
		return ""
	}
	return opts[index-1]
}

// Watch reloads the registry whenever a table file under the registry's
// directory changes. It blocks until ctx is cancelled. onReload, when not nil,
// is called after every reload.
func (r *Registry) Watch(ctx context.Context, onReload func()) error {
	if r.dir == "" {
		return fmt.Errorf("built-in tables cannot be watched")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(r.dir); err != nil {
		return fmt.Errorf("watch %s: %w", r.dir, err)
	}
	for _, f := range Families {
		sub := filepath.Join(r.dir, f.Dir())
		if info, err := os.Stat(sub); err == nil && info.IsDir() {
			if err := w.Add(sub); err != nil {
				return fmt.Errorf("watch %s: %w", sub, err)
			}
		}
	}

	const debounce = 100 * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			r.log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("Table change detected")
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true

		case <-timer.C:
			pending = false
			r.Reload()
			r.log.Info().Str("dir", r.dir).Msg("Spring tables reloaded")
			if onReload != nil {
				onReload()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Warn().Err(err).Msg("Table watcher error")
		}
	}
}
