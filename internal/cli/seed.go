package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/pagedlist/internal/model"
	"github.com/idilsaglam/pagedlist/internal/store/jsonstore"
	"github.com/idilsaglam/pagedlist/internal/store/sqlitestore"
	"github.com/idilsaglam/pagedlist/internal/ui"
)

const FlagCount = "count"

var (
	seedTags     = []string{"go", "ideas", "reading", "work", "travel", "music"}
	seedCreators = []string{"alice", "bob", "carol"}
	seedWords    = strings.Fields("pagination cursor gesture viewport offset refresh memo list page token " +
		"filter reset generation surface container spinner")
)

// getSeedCmd returns the sample data generator.
func getSeedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write sample memos to the json or sqlite source",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt(FlagCount)
			if err != nil {
				return usagef("%s flag: %v", FlagCount, err)
			}
			if n <= 0 {
				return usagef("--%s must be > 0", FlagCount)
			}
			return a.runSeed(cmd.Context(), sampleMemos(n, time.Now()))
		},
	}
	cmd.Flags().Int(FlagCount, 40, "number of memos to add")
	return cmd
}

func (a *app) runSeed(ctx context.Context, items []model.Item) error {
	switch a.cfg.Source {
	case "", "json":
		path := a.cfg.Data
		if path == "" {
			p, err := jsonstore.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		existing, err := jsonstore.Load(path)
		if err != nil {
			return err
		}
		if err := jsonstore.Save(path, append(existing, items...)); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("added %d memos to %s", len(items), path))

	case "sqlite":
		path := a.cfg.Data
		if path == "" {
			path = sqliteFileName
		}
		s, err := sqlitestore.Open(ctx, path)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Insert(ctx, items...); err != nil {
			return err
		}
		ui.OK(fmt.Sprintf("added %d memos to %s", len(items), path))

	default:
		return usagef("seed writes to the json or sqlite source, not %q", a.cfg.Source)
	}
	return nil
}

// sampleMemos returns n memos one minute apart, newest first.
func sampleMemos(n int, now time.Time) []model.Item {
	items := make([]model.Item, 0, n)
	for i := 0; i < n; i++ {
		words := make([]string, 0, 8)
		for j := 0; j < 4+rand.IntN(5); j++ {
			words = append(words, seedWords[rand.IntN(len(seedWords))])
		}
		tag := seedTags[rand.IntN(len(seedTags))]
		items = append(items, model.Item{
			ID:         uuid.NewString(),
			Content:    fmt.Sprintf("**#%d** %s #%s", i+1, strings.Join(words, " "), tag),
			Tags:       []string{tag},
			Pinned:     i%9 == 0,
			Archived:   i%7 == 6,
			Creator:    seedCreators[i%len(seedCreators)],
			CreateTime: now.Add(-time.Duration(i) * time.Minute).UTC(),
		})
	}
	return items
}
