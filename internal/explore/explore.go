// Package explore provides tree-expansion helpers for search
// algorithms built on top of the game state. Every helper relies on
// the same property: each successor owns its state graph outright, so
// sibling branches can be walked by parallel workers with no locks.
package explore

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lox/shortdeck/internal/game"
)

// Children derives one successor per legal action of s, in the order
// LegalActions reports them. A terminal state has no children.
func Children(s *game.GameState) ([]*game.GameState, error) {
	if s.IsTerminal() {
		return nil, nil
	}

	moves := s.LegalActions()
	children := make([]*game.GameState, 0, len(moves))
	for _, m := range moves {
		child, err := s.ApplyAction(m)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// Visit is called for every state reached during a walk, terminal
// states included. Returning an error stops the walk.
type Visit func(*game.GameState) error

// Walk expands the full game tree below root depth-first, calling
// visit on every state including root. The context is checked at each
// node so callers can abandon a walk.
func Walk(ctx context.Context, root *game.GameState, visit Visit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := visit(root); err != nil {
		return err
	}

	children, err := Children(root)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := Walk(ctx, child, visit); err != nil {
			return err
		}
	}
	return nil
}

// WalkParallel walks the tree below root with the top-level branches
// spread across parallel workers. visit must be safe for concurrent
// calls; states themselves need no protection since no two branches
// share mutable memory.
func WalkParallel(ctx context.Context, root *game.GameState, workers int, visit Visit) error {
	if err := visit(root); err != nil {
		return err
	}

	children, err := Children(root)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, child := range children {
		g.Go(func() error {
			return Walk(ctx, child, visit)
		})
	}
	return g.Wait()
}
