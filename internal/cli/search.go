// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/motif/amalfi"
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/mapping"
	"github.com/katalvlaran/motif/match"
	"github.com/katalvlaran/motif/order"
)

// searchConfig is the resolved configuration of one count.
type searchConfig struct {
	Heuristic order.Heuristic
	Variant   match.Variant
	Strength  match.Strength
	Limit     int
}

func (a *app) searchConfig() (searchConfig, error) {
	h, err := order.Lookup(a.v.GetString(keyOrder))
	if err != nil {
		return searchConfig{}, err
	}
	v, err := match.LookupVariant(a.v.GetString(keyVariant))
	if err != nil {
		return searchConfig{}, err
	}
	limit := a.v.GetInt(keyLimit)
	if limit < 0 {
		return searchConfig{}, fmt.Errorf("--%s=%d must not be negative", keyLimit, limit)
	}
	s := match.Induced
	if !a.v.GetBool(keyInduced) {
		s = match.Mono
	}

	return searchConfig{Heuristic: h, Variant: v, Strength: s, Limit: limit}, nil
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := a.searchConfig()
	if err != nil {
		return err
	}

	var st match.Stats
	if a.v.GetBool(keyDirected) {
		st, err = search[graph.Directed](cmd.Context(), a, cfg, args[0], args[1])
	} else {
		st, err = search[graph.Undirected](cmd.Context(), a, cfg, args[0], args[1])
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), st.Matches)
	if a.v.GetBool(keyStats) {
		fmt.Fprintf(cmd.ErrOrStderr(), "states=%d candidates=%d matches=%d stopped=%t\n",
			st.States, st.Candidates, st.Matches, st.Stopped)
	}

	return nil
}

// search loads both graphs with orientation D and runs one enumeration.
func search[D graph.Orientation](ctx context.Context, a *app, cfg searchConfig, patternPath, targetPath string) (match.Stats, error) {
	var (
		g  *graph.AdjacencyList[D]
		h  *graph.ListMat[D]
		eg errgroup.Group
	)
	eg.Go(func() error {
		l, err := amalfi.ReadFile[D](a.fs, patternPath)
		if err != nil {
			return fmt.Errorf("pattern: %w", err)
		}
		g = graph.NewAdjacencyList(l)
		return nil
	})
	eg.Go(func() error {
		l, err := amalfi.ReadFile[D](a.fs, targetPath)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}
		h = graph.NewListMat(l)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return match.Stats{}, err
	}

	log := a.log.With(zap.String("pattern", patternPath), zap.String("target", targetPath))
	if comps := graph.Components(g); len(comps) > 1 {
		log.Info("pattern is disconnected", zap.Int("components", len(comps)))
	}

	opts := append(cfg.Variant.Options(), match.WithStrength(cfg.Strength), match.WithLogger(log))
	s, err := match.NewSearcher(g, h, cfg.Heuristic(g), opts...)
	if err != nil {
		return match.Stats{}, err
	}

	var found int
	return s.RunContext(ctx, func(*mapping.Mapping) match.Signal {
		found++
		if cfg.Limit > 0 && found >= cfg.Limit {
			return match.Stop
		}
		return match.Continue
	})
}
