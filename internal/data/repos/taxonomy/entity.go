package taxonomy

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/platform/dbctx"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

// ListQuery narrows a listing. IDs restricts the rows to the given ids unless Unrestricted is
// set; an empty IDs with Unrestricted false matches nothing.
type ListQuery struct {
	IDs          []int64
	Unrestricted bool
	Status       string
	Q            string
	Page         int
	Limit        int
}

// Page is one listing page. Items holds a *[]*Model for the listed kind.
type Page struct {
	Items interface{}
	Total int64
}

type EntityRepo interface {
	AllIDs(dbc dbctx.Context, kind domain.Kind) ([]int64, error)
	List(dbc dbctx.Context, kind domain.Kind, q ListQuery) (*Page, error)
	Get(dbc dbctx.Context, kind domain.Kind, id uuid.UUID) (interface{}, error)
}

type entityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntityRepo(db *gorm.DB, baseLog *logger.Logger) EntityRepo {
	return &entityRepo{
		db:  db,
		log: baseLog.With("repo", "EntityRepo"),
	}
}

func (r *entityRepo) AllIDs(dbc dbctx.Context, kind domain.Kind) ([]int64, error) {
	model, ok := domain.NewModel(kind)
	if !ok {
		return nil, fmt.Errorf("no model for kind %q", kind)
	}
	out := []int64{}
	if err := dbc.Conn(r.db).Model(model).Order("id").Pluck("id", &out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []int64{}
	}
	return out, nil
}

// idChunk caps the ids bound into one statement, below the SQLite and Postgres parameter limits.
const idChunk = 5000

func (r *entityRepo) List(dbc dbctx.Context, kind domain.Kind, q ListQuery) (*Page, error) {
	model, ok := domain.NewModel(kind)
	if !ok {
		return nil, fmt.Errorf("no model for kind %q", kind)
	}
	items, _ := domain.NewSlice(kind)
	page := &Page{Items: items}
	if !q.Unrestricted && len(q.IDs) == 0 {
		return page, nil
	}

	conn := dbc.Conn(r.db)
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * limit
	}

	if q.Unrestricted {
		base := conn.Model(model).Scopes(listFilters(q))
		if err := base.Session(&gorm.Session{}).Count(&page.Total).Error; err != nil {
			return nil, err
		}
		if err := base.Session(&gorm.Session{}).
			Order("id").
			Offset(offset).
			Limit(limit).
			Find(items).Error; err != nil {
			return nil, err
		}
		return page, nil
	}

	matched, err := r.matchIDs(conn, model, q)
	if err != nil {
		return nil, err
	}
	page.Total = int64(len(matched))
	if offset >= len(matched) {
		return page, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	if err := conn.Where("id IN ?", matched[offset:end]).Order("id").Find(items).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// matchIDs returns the distinct ids of q.IDs that exist and pass q's filters, in id order.
func (r *entityRepo) matchIDs(conn *gorm.DB, model interface{}, q ListQuery) ([]int64, error) {
	ids := append([]int64(nil), q.IDs...)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	out := make([]int64, 0, len(ids))
	for start := 0; start < len(ids); start += idChunk {
		end := start + idChunk
		if end > len(ids) {
			end = len(ids)
		}
		var part []int64
		err := conn.Model(model).
			Scopes(listFilters(q)).
			Where("id IN ?", ids[start:end]).
			Order("id").
			Pluck("id", &part).Error
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

func listFilters(q ListQuery) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(q.Status); s != "" {
			tx = tx.Where("status = ?", s)
		}
		if s := strings.TrimSpace(q.Q); s != "" {
			tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
		}
		return tx
	}
}

func (r *entityRepo) Get(dbc dbctx.Context, kind domain.Kind, id uuid.UUID) (interface{}, error) {
	model, ok := domain.NewModel(kind)
	if !ok {
		return nil, fmt.Errorf("no model for kind %q", kind)
	}
	if id == uuid.Nil {
		return nil, nil
	}
	err := dbc.Conn(r.db).Where("uuid = ?", id).First(model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model, nil
}
