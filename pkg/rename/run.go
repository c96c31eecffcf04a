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

package rename

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/plexname/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run scans root and renames everything it finds. root is made absolute
// first so that files directly inside it are named after it.
func Run(ctx context.Context, fsys afero.Fs, root string, reporter Reporter) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return errors.Errorf("getting absolute root path: %w", err)
	}

	renamer, err := New(Options{Fs: fsys, Reporter: reporter})
	if err != nil {
		return errors.Errorf("creating renamer: %w", err)
	}

	p, err := plan.Build(ctx, fsys, absRoot)
	if err != nil {
		return errors.Errorf("building rename plan: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("root", absRoot).Int("pairs", len(p)).Msg("applying rename plan")

	if err := renamer.Execute(ctx, p); err != nil {
		return errors.Errorf("applying rename plan: %w", err)
	}

	return nil
}
