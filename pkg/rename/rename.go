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
	"github.com/walteh/plexname/pkg/log"
	"github.com/walteh/plexname/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter receives progress for a run
type Reporter interface {
	// LogRename is called after each successful rename
	LogRename(ctx context.Context, op log.RenameOperation)
	// LogNoneFound is called instead of any rename when the plan is empty
	LogNoneFound(ctx context.Context)
	// LogComplete is called once the whole plan has been applied
	LogComplete(ctx context.Context)
}

// 🔧 Options contains configuration for the renamer
type Options struct {
	// Fs is the filesystem renames are applied to
	Fs afero.Fs
	// Reporter receives progress
	Reporter Reporter
}

// 🎮 Renamer applies plans one pair at a time
type Renamer struct {
	fs       afero.Fs
	reporter Reporter
}

// 🏭 New creates a new renamer with the given options
func New(opts Options) (*Renamer, error) {
	if opts.Fs == nil {
		return nil, errors.New("filesystem is required")
	}
	if opts.Reporter == nil {
		return nil, errors.New("reporter is required")
	}
	return &Renamer{
		fs:       opts.Fs,
		reporter: opts.Reporter,
	}, nil
}

// 🏃 Execute renames every pair in order. The first failure stops the run;
// renames already applied are left in place.
func (r *Renamer) Execute(ctx context.Context, p plan.Plan) error {
	logger := zerolog.Ctx(ctx)

	if len(p) == 0 {
		r.reporter.LogNoneFound(ctx)
		r.reporter.LogComplete(ctx)
		return nil
	}

	for i, pair := range p {
		if err := r.fs.Rename(pair.Original, pair.Target); err != nil {
			logger.Debug().
				Int("applied", i).
				Int("remaining", len(p)-i).
				Msg("stopping after failed rename")
			return errors.Errorf("renaming %s to %s: %w", pair.Original, pair.Target, err)
		}

		logger.Debug().
			Str("from", pair.Original).
			Str("to", pair.Target).
			Bool("noop", pair.Noop()).
			Msg("applied rename")

		r.reporter.LogRename(ctx, log.RenameOperation{
			From: filepath.Base(pair.Original),
			To:   filepath.Base(pair.Target),
		})
	}

	r.reporter.LogComplete(ctx)

	return nil
}
