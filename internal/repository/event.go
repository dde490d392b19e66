package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/query"
)

const eventColumns = `id, title, description, location, event_date, start_time, end_time,
			hours, max_participants, department, departments, is_for_all_departments,
			status, is_visible_to_students, created_by, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.Date, e.StartTime, e.EndTime,
		e.Hours, e.MaxParticipants, e.Department, pq.Array(e.Departments), e.IsForAllDepartments,
		e.Status, e.IsVisibleToStudents, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title=$2, description=$3, location=$4, event_date=$5, start_time=$6,
			      end_time=$7, hours=$8, max_participants=$9, department=$10,
			      departments=$11, is_for_all_departments=$12, status=$13,
			      is_visible_to_students=$14, updated_at=$15
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.Date, e.StartTime,
		e.EndTime, e.Hours, e.MaxParticipants, e.Department,
		pq.Array(e.Departments), e.IsForAllDepartments, e.Status,
		e.IsVisibleToStudents, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, q, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if err = r.loadAttendance(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) loadAttendance(ctx context.Context, e *domain.Event) error {
	q := `SELECT user_id, status, registration_approved, registered_at
		  FROM attendance
		  WHERE event_id=$1
		  ORDER BY seq`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, q, e.ID)
	if err != nil {
		return fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.AttendanceEntry
		if err = rows.Scan(&entry.UserID, &entry.Status, &entry.RegistrationApproved, &entry.RegisteredAt); err != nil {
			return fmt.Errorf("scan attendance entry: %w", err)
		}
		e.Attendance = append(e.Attendance, entry)
	}

	return rows.Err()
}

// Save rewrites the event row and its whole attendance list in one
// transaction, mirroring the single-document save the accounting model
// assumes. Seq preserves registration order across the rewrite.
func (r *EventRepository) Save(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `UPDATE events
					SET title=$2, description=$3, location=$4, event_date=$5, start_time=$6,
					    end_time=$7, hours=$8, max_participants=$9, department=$10,
					    departments=$11, is_for_all_departments=$12, status=$13,
					    is_visible_to_students=$14, updated_at=now()
					WHERE id=$1`
	res, err := tx.ExecContext(
		ctx, updateQuery,
		e.ID, e.Title, e.Description, e.Location, e.Date, e.StartTime,
		e.EndTime, e.Hours, e.MaxParticipants, e.Department,
		pq.Array(e.Departments), e.IsForAllDepartments, e.Status,
		e.IsVisibleToStudents,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM attendance WHERE event_id=$1`, e.ID); err != nil {
		return fmt.Errorf("clear attendance: %w", err)
	}

	insertQuery := `INSERT INTO attendance (event_id, user_id, seq, status, registration_approved, registered_at)
					VALUES ($1, $2, $3, $4, $5, $6)`
	for i, entry := range e.Attendance {
		if _, err = tx.ExecContext(
			ctx, insertQuery,
			e.ID, entry.UserID, i, entry.Status, entry.RegistrationApproved, entry.RegisteredAt,
		); err != nil {
			return fmt.Errorf("insert attendance entry: %w", err)
		}
	}

	return tx.Commit()
}

// Find renders the role-scoped filter and the caller's narrowing into one
// SELECT. Attendance lists are not loaded for search results.
func (r *EventRepository) Find(ctx context.Context, q query.SearchQuery) ([]*domain.Event, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Filter.ExcludeDisabled {
		conds = append(conds, "status <> "+arg(domain.EventStatusDisabled))
	}
	if q.Filter.StudentVisibleOnly {
		conds = append(conds, "is_visible_to_students")
	}
	if q.Filter.Department != "" {
		p := arg(q.Filter.Department)
		conds = append(conds, "(department = "+p+" OR is_for_all_departments OR "+p+" = ANY(departments))")
	}
	if q.Term != "" {
		p := arg("%" + q.Term + "%")
		conds = append(conds, "(title ILIKE "+p+" OR description ILIKE "+p+" OR location ILIKE "+p+")")
	}
	if q.ExactDepartment != "" {
		conds = append(conds, "department = "+arg(q.ExactDepartment))
	}
	if q.ExactStatus != "" {
		conds = append(conds, "status = "+arg(q.ExactStatus))
	}
	if q.DateFrom != nil {
		conds = append(conds, "event_date >= "+arg(*q.DateFrom))
	}
	if q.DateTo != nil {
		conds = append(conds, "event_date <= "+arg(*q.DateTo))
	}

	sqlQuery := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		sqlQuery += " WHERE " + strings.Join(conds, " AND ")
	}
	sqlQuery += " ORDER BY created_at DESC"
	if q.Limit > 0 {
		sqlQuery += " LIMIT " + arg(q.Limit)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) DisablePast(ctx context.Context, before time.Time) ([]*domain.Event, error) {
	q := `UPDATE events
		  SET status = $1, updated_at = now()
		  WHERE event_date < $2 AND status <> $1
		  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, q, domain.EventStatusDisabled, before)
	if err != nil {
		return nil, fmt.Errorf("disable past events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Date, &e.StartTime, &e.EndTime,
		&e.Hours, &e.MaxParticipants, &e.Department, pq.Array(&e.Departments), &e.IsForAllDepartments,
		&e.Status, &e.IsVisibleToStudents, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
