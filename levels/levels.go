// File: levels/levels.go
package levels

import (
	"embed"
	"io/fs"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/lguibr/bombgrid/game"
	"github.com/lguibr/bombgrid/utils"
)

//go:embed plans/*.txt
var embedded embed.FS

// Default returns the bundled campaign in play order.
func Default() []string {
	plans, err := Load(embedded)
	if err != nil {
		panic(err)
	}
	return plans
}

// Dir loads every *.txt plan from a directory on disk.
func Dir(path string) ([]string, error) {
	return Load(os.DirFS(path))
}

// Load reads every *.txt file of fsys, at any depth, sorted by path. Each
// plan must parse; the first broken one fails the whole campaign.
func Load(fsys fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && len(path) > 4 && path[len(path)-4:] == ".txt" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list levels")
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, errors.New("no level plans found")
	}

	cfg := utils.DefaultConfig()
	plans := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "read level %s", path)
		}
		plan := string(data)
		if _, err := game.ParseLevel(plan, cfg, utils.FixedRandom{}); err != nil {
			return nil, errors.Wrapf(err, "level %s", path)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
