package service

import (
	"context"
	"fmt"

	"directory_backend/internal/relationships/graph"
	"directory_backend/internal/relationships/repository"
	"directory_backend/internal/relationships/transport"
	"directory_backend/platform/apperr"
	"directory_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	msgCompanyNotFound   = "company not found"
	msgDataAccessFailure = "data access failure"

	// ringFanout bounds concurrent bundle loads while expanding a ring.
	ringFanout = 4
)

// Service builds company relationship graphs.
type Service struct {
	repo     repository.CompanyRepository
	log      *logger.Logger
	maxDepth int
}

// New creates a new relationships service.
func New(repo repository.CompanyRepository, log *logger.Logger, maxDepth int) *Service {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &Service{repo: repo, log: log, maxDepth: maxDepth}
}

// BuildRelationshipGraph assembles the relationship graph around a company.
//
// Depth 1 covers the company's direct relationships. Each further level loads
// the bundles of the previous ring's companies and folds them into the same
// graph. Stats cover the whole graph; the relationships view covers the
// central company only.
//
// An unknown company id is a NotFound error. Every other failure is an
// Internal error wrapping the cause; no partial graph is returned.
func (s *Service) BuildRelationshipGraph(ctx context.Context, companyID string, opts graph.Options) (transport.RelationshipGraphResponse, error) {
	if opts.Depth < 1 {
		opts.Depth = 1
	}
	if opts.Depth > s.maxDepth {
		return transport.RelationshipGraphResponse{}, apperr.Validation("depth exceeds the configured maximum").
			WithDetails(map[string]int{"maxDepth": s.maxDepth})
	}

	root, err := s.repo.GetCompanyWithRelationships(ctx, companyID, opts)
	if err != nil {
		return transport.RelationshipGraphResponse{}, s.mapError(ctx, companyID, err)
	}

	builder := graph.NewBuilder()
	builder.Add(root, opts)

	if err := s.expand(ctx, builder, root, opts); err != nil {
		return transport.RelationshipGraphResponse{}, s.mapError(ctx, companyID, err)
	}

	g := builder.Graph()
	return transport.RelationshipGraphResponse{
		Company: transport.CompanySummary{
			ID:          root.Company.ID,
			Name:        root.Company.Name,
			CompanyType: root.Company.CompanyType,
			LogoURL:     root.Company.LogoURL,
		},
		Relationships: graph.Project(root),
		Graph:         g,
		Stats:         graph.ComputeStats(g),
		Depth:         opts.Depth,
	}, nil
}

// expand folds rings 2..opts.Depth into builder.
func (s *Service) expand(ctx context.Context, builder *graph.Builder, root graph.Bundle, opts graph.Options) error {
	visited := map[string]struct{}{root.Company.ID: {}}
	frontier := unvisited(graph.Neighbours(root), visited)

	for ring := 2; ring <= opts.Depth && len(frontier) > 0; ring++ {
		bundles, err := s.loadRing(ctx, frontier, opts)
		if err != nil {
			return err
		}

		var next []string
		for _, b := range bundles {
			builder.Add(b, opts)
			next = append(next, unvisited(graph.Neighbours(b), visited)...)
		}
		frontier = next
	}
	return nil
}

// loadRing loads bundles concurrently and returns them in frontier order.
// Companies that disappeared since the previous ring was loaded are skipped.
func (s *Service) loadRing(ctx context.Context, frontier []string, opts graph.Options) ([]graph.Bundle, error) {
	results := make([]*graph.Bundle, len(frontier))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ringFanout)
	for i, id := range frontier {
		g.Go(func() error {
			b, err := s.repo.GetCompanyWithRelationships(gctx, id, opts)
			if err != nil {
				if apperr.Is(err, apperr.KindNotFound) {
					s.log.WithContext(ctx).Debug("related company vanished during expansion", "company_id", id)
					return nil
				}
				return err
			}
			results[i] = &b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundles := make([]graph.Bundle, 0, len(results))
	for _, b := range results {
		if b != nil {
			bundles = append(bundles, *b)
		}
	}
	return bundles, nil
}

// unvisited returns ids not yet in visited and marks them.
func unvisited(ids []string, visited map[string]struct{}) []string {
	var out []string
	for _, id := range ids {
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *Service) mapError(ctx context.Context, companyID string, err error) error {
	if apperr.Is(err, apperr.KindNotFound) {
		return apperr.NotFound(msgCompanyNotFound)
	}
	const op = "relationships.BuildRelationshipGraph"
	s.log.WithContext(ctx).DatabaseError(op, fmt.Errorf("company %s: %w", companyID, err))
	return apperr.Wrap(apperr.KindInternal, msgDataAccessFailure, err).WithOp(op)
}
