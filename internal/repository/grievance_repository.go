package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/grievance-service/internal/domain"
)

const grievanceColumns = `id, ticket, employee_id, employee_name, mobile_number, official_email,
               designation, department, office_name, district_name, user_role, priority,
               issue_timestamp, issue_category, issue_sub_category, issue_related,
               issue_section, issue_sub_section, subject, description, status, files_count,
               created_at, updated_at`

// GrievanceFilter captures admin listing parameters.
type GrievanceFilter struct {
	Status   *domain.GrievanceStatus
	Category *string
	Limit    int
	Offset   int
}

// GrievanceRepository encapsulates grievance persistence. The unique
// constraint on ticket is the authoritative guard against duplicate
// identifiers; IsDuplicateTicket exposes its violation to callers.
type GrievanceRepository interface {
	Insert(ctx context.Context, grievance *domain.Grievance) error
	ExistsByTicket(ctx context.Context, ticket string) (bool, error)
	GetByTicket(ctx context.Context, ticket string) (*domain.Grievance, error)
	LatestByMobile(ctx context.Context, mobile string) (*domain.Grievance, error)
	ListByMobile(ctx context.Context, mobile string, limit int) ([]domain.Grievance, error)
	List(ctx context.Context, filter GrievanceFilter) ([]domain.Grievance, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.GrievanceStatus) (*domain.Grievance, error)
}

type grievanceRepository struct {
	pool *pgxpool.Pool
}

// NewGrievanceRepository instantiates the repository.
func NewGrievanceRepository(pool *pgxpool.Pool) GrievanceRepository {
	return &grievanceRepository{pool: pool}
}

// IsDuplicateTicket reports whether err is a unique-constraint violation on
// the ticket column.
func IsDuplicateTicket(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *grievanceRepository) Insert(ctx context.Context, grievance *domain.Grievance) error {
	const query = `
        INSERT INTO grievances (ticket, employee_id, employee_name, mobile_number, official_email,
            designation, department, office_name, district_name, user_role, priority,
            issue_timestamp, issue_category, issue_sub_category, issue_related,
            issue_section, issue_sub_section, subject, description, status, files_count)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		grievance.Ticket,
		grievance.EmployeeID,
		grievance.EmployeeName,
		grievance.MobileNumber,
		grievance.OfficialEmail,
		grievance.Designation,
		grievance.Department,
		grievance.OfficeName,
		grievance.DistrictName,
		grievance.UserRole,
		grievance.Priority,
		grievance.IssueTimestamp,
		grievance.IssueCategory,
		grievance.IssueSubCategory,
		grievance.IssueRelated,
		grievance.IssueSection,
		grievance.IssueSubSection,
		grievance.Subject,
		grievance.Description,
		grievance.Status,
		grievance.FilesCount,
	).Scan(&grievance.ID, &grievance.CreatedAt, &grievance.UpdatedAt)
}

func (r *grievanceRepository) ExistsByTicket(ctx context.Context, ticket string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM grievances WHERE LOWER(ticket) = LOWER($1))`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, ticket).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *grievanceRepository) GetByTicket(ctx context.Context, ticket string) (*domain.Grievance, error) {
	query := fmt.Sprintf(`SELECT %s FROM grievances WHERE LOWER(ticket) = LOWER($1)
        ORDER BY created_at DESC LIMIT 1`, grievanceColumns)
	return r.fetchSingle(ctx, query, ticket)
}

func (r *grievanceRepository) LatestByMobile(ctx context.Context, mobile string) (*domain.Grievance, error) {
	query := fmt.Sprintf(`SELECT %s FROM grievances WHERE mobile_number = $1
        ORDER BY created_at DESC LIMIT 1`, grievanceColumns)
	return r.fetchSingle(ctx, query, mobile)
}

func (r *grievanceRepository) ListByMobile(ctx context.Context, mobile string, limit int) ([]domain.Grievance, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`SELECT %s FROM grievances WHERE mobile_number = $1
        ORDER BY created_at DESC LIMIT %d`, grievanceColumns, limit)
	rows, err := r.pool.Query(ctx, query, mobile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrievances(rows)
}

func (r *grievanceRepository) List(ctx context.Context, filter GrievanceFilter) ([]domain.Grievance, int64, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Category != nil && strings.TrimSpace(*filter.Category) != "" {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("issue_category=$%d", len(args)))
	}
	where := strings.Join(clauses, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM grievances WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM grievances WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		grievanceColumns, where, limit, offset)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := scanGrievances(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *grievanceRepository) UpdateStatus(ctx context.Context, id int64, status domain.GrievanceStatus) (*domain.Grievance, error) {
	query := fmt.Sprintf(`UPDATE grievances SET status=$1, updated_at=NOW() WHERE id=$2
        RETURNING %s`, grievanceColumns)
	return r.fetchSingle(ctx, query, status, id)
}

func (r *grievanceRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Grievance, error) {
	var grievance domain.Grievance
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&grievance.ID,
		&grievance.Ticket,
		&grievance.EmployeeID,
		&grievance.EmployeeName,
		&grievance.MobileNumber,
		&grievance.OfficialEmail,
		&grievance.Designation,
		&grievance.Department,
		&grievance.OfficeName,
		&grievance.DistrictName,
		&grievance.UserRole,
		&grievance.Priority,
		&grievance.IssueTimestamp,
		&grievance.IssueCategory,
		&grievance.IssueSubCategory,
		&grievance.IssueRelated,
		&grievance.IssueSection,
		&grievance.IssueSubSection,
		&grievance.Subject,
		&grievance.Description,
		&grievance.Status,
		&grievance.FilesCount,
		&grievance.CreatedAt,
		&grievance.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &grievance, nil
}

func scanGrievances(rows pgx.Rows) ([]domain.Grievance, error) {
	var result []domain.Grievance
	for rows.Next() {
		var grievance domain.Grievance
		if err := rows.Scan(
			&grievance.ID,
			&grievance.Ticket,
			&grievance.EmployeeID,
			&grievance.EmployeeName,
			&grievance.MobileNumber,
			&grievance.OfficialEmail,
			&grievance.Designation,
			&grievance.Department,
			&grievance.OfficeName,
			&grievance.DistrictName,
			&grievance.UserRole,
			&grievance.Priority,
			&grievance.IssueTimestamp,
			&grievance.IssueCategory,
			&grievance.IssueSubCategory,
			&grievance.IssueRelated,
			&grievance.IssueSection,
			&grievance.IssueSubSection,
			&grievance.Subject,
			&grievance.Description,
			&grievance.Status,
			&grievance.FilesCount,
			&grievance.CreatedAt,
			&grievance.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, grievance)
	}
	return result, rows.Err()
}
