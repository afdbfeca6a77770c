package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

const (
	studentsTable    = "students"
	studentIDColumn  = "student_id"
	studentSelectSQL = "student_id, name, gender, date_of_birth, contact, email, university, course, year_of_study"
)

// StudentRecord holds the values of a new students row
type StudentRecord struct {
	Name        string
	Gender      string
	DateOfBirth time.Time
	Contact     string
	Email       string
	University  *string
	Course      *string
	YearOfStudy *int
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a student and returns the generated student_id
func (r *StudentRepository) Create(ctx context.Context, rec StudentRecord) (int64, error) {
	return insertReturningID(ctx, r.db, studentsTable, studentIDColumn,
		[]string{"name", "gender", "date_of_birth", "contact", "email", "university", "course", "year_of_study"},
		[]interface{}{rec.Name, rec.Gender, rec.DateOfBirth, rec.Contact, rec.Email, rec.University, rec.Course, rec.YearOfStudy},
	)
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	var dob pgtype.Date
	var year pgtype.Int4
	if err := row.Scan(&s.ID, &s.Name, &s.Gender, &dob, &s.Contact, &s.Email, &s.University, &s.Course, &year); err != nil {
		return nil, err
	}
	s.DateOfBirth = datePtr(dob)
	s.YearOfStudy = intPtr(year)
	return s, nil
}

// GetByID retrieves one student
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentSelectSQL).
		From(studentsTable).
		Where(squirrel.Eq{studentIDColumn: id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return student, nil
}

// List returns every student ordered by student_id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentSelectSQL).
		From(studentsTable).
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Update writes only the columns present in changes
func (r *StudentRepository) Update(ctx context.Context, id int64, changes *Changes) error {
	return updateByID(ctx, r.db, studentsTable, studentIDColumn, id, changes)
}

// Delete removes a student by id
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, studentsTable, studentIDColumn, id)
}
