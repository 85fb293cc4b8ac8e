package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/data/repos"
	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/platform/apierr"
	"github.com/yungbote/abcd-backend/internal/platform/dbctx"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

// Invalidator drops cached resolutions after a mutation.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type LinkRequest struct {
	SourceID int64 `json:"source_id"`
	TargetID int64 `json:"target_id"`
	// TargetColumn picks the column on joins with several (topic_id or sub_topic_id). Empty
	// means the join's first target.
	TargetColumn string `json:"target_column,omitempty"`
}

type LinkResult struct {
	Association string `json:"association"`
	SourceID    int64  `json:"source_id"`
	TargetID    int64  `json:"target_id"`
	Column      string `json:"target_column"`
	Changed     bool   `json:"changed"`
}

type LinkService interface {
	Link(ctx context.Context, association string, req LinkRequest) (*LinkResult, error)
	Unlink(ctx context.Context, association string, req LinkRequest) (*LinkResult, error)
}

type linkService struct {
	db          *gorm.DB
	log         *logger.Logger
	links       repos.LinkRepo
	invalidator Invalidator
}

func NewLinkService(db *gorm.DB, baseLog *logger.Logger, links repos.LinkRepo, invalidator Invalidator) LinkService {
	return &linkService{
		db:          db,
		log:         baseLog.With("service", "LinkService"),
		links:       links,
		invalidator: invalidator,
	}
}

var errInvalidLink = errors.New("invalid link")

func (s *linkService) prepare(association string, req LinkRequest) (taxonomy.JoinSpec, string, error) {
	join, ok := taxonomy.LookupJoin(strings.TrimSpace(association))
	if !ok {
		return taxonomy.JoinSpec{}, "", apierr.NotFound("not_found", fmt.Errorf("unknown association %q", association))
	}
	if req.SourceID <= 0 || req.TargetID <= 0 {
		return taxonomy.JoinSpec{}, "", apierr.BadRequest("invalid_request", fmt.Errorf("%w: source_id and target_id must be positive", errInvalidLink))
	}
	column := strings.TrimSpace(req.TargetColumn)
	if column == "" {
		column = join.DefaultTarget()
	}
	if !join.HasTarget(column) {
		return taxonomy.JoinSpec{}, "", apierr.BadRequest("invalid_request", fmt.Errorf("%w: %s has no target column %q", errInvalidLink, join.Table, column))
	}
	return join, column, nil
}

func (s *linkService) Link(ctx context.Context, association string, req LinkRequest) (*LinkResult, error) {
	join, column, err := s.prepare(association, req)
	if err != nil {
		return nil, err
	}
	var created bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		created, txErr = s.links.Create(dbctx.Context{Ctx: ctx, Tx: tx}, join, column, req.SourceID, req.TargetID)
		return txErr
	})
	if err != nil {
		s.log.Error("link failed", "association", join.Table, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "internal", err)
	}
	if created {
		s.invalidate(ctx, join.Table)
	}
	return &LinkResult{Association: join.Table, SourceID: req.SourceID, TargetID: req.TargetID, Column: column, Changed: created}, nil
}

func (s *linkService) Unlink(ctx context.Context, association string, req LinkRequest) (*LinkResult, error) {
	join, column, err := s.prepare(association, req)
	if err != nil {
		return nil, err
	}
	removed, err := s.links.Delete(dbctx.New(ctx), join, column, req.SourceID, req.TargetID)
	if err != nil {
		s.log.Error("unlink failed", "association", join.Table, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "internal", err)
	}
	if removed {
		s.invalidate(ctx, join.Table)
	}
	return &LinkResult{Association: join.Table, SourceID: req.SourceID, TargetID: req.TargetID, Column: column, Changed: removed}, nil
}

func (s *linkService) invalidate(ctx context.Context, table string) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.log.Warn("filter cache invalidation failed", "association", table, "error", err)
	}
}
