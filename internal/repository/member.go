package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/charism-app/charism-events/internal/domain"
)

// MemberRepository reads the member records the user system maintains;
// this service never writes them.
type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MemberRepository) Resolve(ctx context.Context, userIDs []string) (map[string]*domain.Member, error) {
	query := `SELECT user_id, name, department, academic_year
			  FROM members
			  WHERE user_id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("resolve members: %w", err)
	}
	defer rows.Close()

	res := make(map[string]*domain.Member, len(userIDs))
	for rows.Next() {
		var m domain.Member
		if err = rows.Scan(&m.UserID, &m.Name, &m.Department, &m.AcademicYear); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res[m.UserID] = &m
	}

	return res, rows.Err()
}
