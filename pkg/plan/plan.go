// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Pair is a single planned rename. Target always lives in the same
// directory as Original.
type Pair struct {
	Original string
	Target   string
}

// Noop reports whether renaming the pair would leave the path unchanged.
func (p Pair) Noop() bool {
	return p.Original == p.Target
}

// Plan is the ordered set of renames found by one scan, in traversal order.
type Plan []Pair

// 🔍 Build walks root and returns a pair for every regular file whose stem
// is entirely alphanumeric. Nothing is renamed; the whole tree is scanned
// before Build returns.
func Build(ctx context.Context, fsys afero.Fs, root string) (Plan, error) {
	logger := zerolog.Ctx(ctx)

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Errorf("reading root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", root)
	}

	logger.Debug().Str("root", root).Msg("scanning for eligible files")

	plan := Plan{}
	walk := func(rel string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}

		path := filepath.Join(root, filepath.FromSlash(rel))

		ok, err := isCandidate(fsys, path)
		if err != nil {
			return errors.Errorf("checking %s: %w", path, err)
		}
		if !ok {
			logger.Debug().Str("path", path).Msg("skipping ineligible entry")
			return nil
		}

		target, ok := TargetPath(path)
		if !ok {
			logger.Debug().Str("path", path).Msg("skipping file without a named parent")
			return nil
		}

		logger.Debug().Str("from", path).Str("to", target).Msg("planned rename")
		plan = append(plan, Pair{Original: path, Target: target})
		return nil
	}

	// root is never part of the pattern, so glob metacharacters in
	// directory names cannot change what is matched.
	iofs := afero.NewIOFS(afero.NewBasePathFs(fsys, root))
	if err := doublestar.GlobWalk(iofs, "**/*", walk, doublestar.WithFailOnIOErrors(), doublestar.WithNoFollow()); err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Int("files", len(plan)).Msg("scan complete")

	return plan, nil
}

// isCandidate stats through symlinks, so a link to a regular file counts.
// Links to directories and links that cannot be followed (dangling, loops)
// do not.
func isCandidate(fsys afero.Fs, path string) (bool, error) {
	stem, _ := SplitName(filepath.Base(path))
	if !IsEligibleStem(stem) {
		return false, nil
	}

	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		if isSymlink(fsys, path) {
			return false, nil
		}
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// isSymlink reports whether path itself is a symlink, on filesystems that
// can tell.
func isSymlink(fsys afero.Fs, path string) bool {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return false
	}
	info, _, err := lstater.LstatIfPossible(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

// SplitName splits a base name into its stem and final extension. A leading
// or trailing dot does not start an extension, so ".hidden" and "show." are
// all stem.
func SplitName(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

// IsEligibleStem reports whether every rune of stem is a letter or number.
func IsEligibleStem(stem string) bool {
	if stem == "" {
		return false
	}
	for _, r := range stem {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// TargetPath names the file after its parent directory, keeping the
// extension and the directory. Only the final path element is rebuilt.
// It returns false when the parent has no usable name, as with "/".
func TargetPath(original string) (string, bool) {
	dir := filepath.Dir(original)

	parent := filepath.Base(dir)
	if parent == "." || parent == ".." || parent == string(filepath.Separator) {
		return "", false
	}

	_, ext := SplitName(filepath.Base(original))

	return filepath.Join(dir, parent+ext), true
}
