package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/repositories"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

// Services holds every service used by the controllers
type Services struct {
	StudentService    *StudentService
	SponsorService    *SponsorService
	ProgramService    *ProgramService
	AllocationService *AllocationService
	PaymentService    *PaymentService
	DashboardService  *DashboardService
	ReportService     *ReportService
}

// ReportDefaults are the fallback values of optional dashboard parameters
type ReportDefaults struct {
	TopPrograms    int
	UpcomingMonths int
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories, defaults ReportDefaults) *Services {
	return &Services{
		StudentService:    NewStudentService(repos.StudentRepository),
		SponsorService:    NewSponsorService(repos.SponsorRepository),
		ProgramService:    NewProgramService(repos.ProgramRepository),
		AllocationService: NewAllocationService(repos.AllocationRepository),
		PaymentService:    NewPaymentService(repos.PaymentRepository),
		DashboardService:  NewDashboardService(repos.DashboardRepository, defaults, time.Now),
		ReportService:     NewReportService(repos.ReportRepository, repos.StudentRepository, repos.PaymentRepository),
	}
}

// Stores the services depend on. The repositories satisfy them; tests use fakes.

type studentStore interface {
	Create(ctx context.Context, rec repositories.StudentRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, id int64, changes *repositories.Changes) error
	Delete(ctx context.Context, id int64) error
}

type sponsorStore interface {
	Create(ctx context.Context, rec repositories.SponsorRecord) (int64, error)
	List(ctx context.Context) ([]*models.Sponsor, error)
	Update(ctx context.Context, id int64, changes *repositories.Changes) error
	Delete(ctx context.Context, id int64) error
}

type programStore interface {
	Create(ctx context.Context, rec repositories.ProgramRecord) (int64, error)
	List(ctx context.Context) ([]*models.ScholarshipProgram, error)
	Update(ctx context.Context, id int64, changes *repositories.Changes) error
	Delete(ctx context.Context, id int64) error
}

type allocationStore interface {
	Create(ctx context.Context, rec repositories.AllocationRecord) (int64, error)
	List(ctx context.Context) ([]*models.SponsorshipAllocation, error)
	Update(ctx context.Context, id int64, changes *repositories.Changes) error
	Delete(ctx context.Context, id int64) error
}

type paymentStore interface {
	Create(ctx context.Context, rec repositories.PaymentRecord) (int64, error)
	List(ctx context.Context) ([]*models.Payment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Payment, error)
	Update(ctx context.Context, id int64, changes *repositories.Changes) error
	Delete(ctx context.Context, id int64) error
}

// ErrNoFieldsToUpdate is returned for a patch that names no known field
var ErrNoFieldsToUpdate = apperrors.NewValidationError("No fields to update.")

// mutationError maps a repository failure on a write to the API taxonomy
func mutationError(err error, notFound error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return apperrors.NewPersistenceError(err)
}

// setRequiredText stages a patch of a NOT NULL text column. A blank value
// is rejected instead of being written.
func setRequiredText(changes *repositories.Changes, column string, v *string) error {
	if v == nil {
		return nil
	}
	if strings.TrimSpace(*v) == "" {
		return apperrors.NewValidationError(column + " must not be blank.")
	}
	changes.Set(column, *v)
	return nil
}

// parseDateField parses a YYYY-MM-DD value of the named field
func parseDateField(field, value string) (time.Time, error) {
	d, err := models.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field + " must be a date in YYYY-MM-DD format")
	}
	return d.Time, nil
}
