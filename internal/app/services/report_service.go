package services

import (
	"context"
	"errors"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/repositories"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

type reportStore interface {
	StudentSponsorship(ctx context.Context, f models.ReportFilters) ([]models.StudentSponsorshipRow, error)
	PaymentSummary(ctx context.Context, f models.ReportFilters) ([]models.PaymentSummaryRow, error)
	SponsorContribution(ctx context.Context, f models.ReportFilters) ([]models.SponsorContributionRow, error)
	ProgramSummary(ctx context.Context, f models.ReportFilters) ([]models.ProgramSummaryRow, error)
	AllocationsByStatus(ctx context.Context, f models.ReportFilters) ([]models.AllocationStatusRow, error)
	StudentsPerUniversity(ctx context.Context, f models.ReportFilters) ([]models.UniversityCount, error)
	StudentAllocations(ctx context.Context, studentID int64) ([]models.StudentAllocationRow, error)
}

type studentReader interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

type studentPayments interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Payment, error)
}

// ReportService runs the filterable reports
type ReportService struct {
	repo     reportStore
	students studentReader
	payments studentPayments
}

// NewReportService creates a new report service instance
func NewReportService(repo reportStore, students studentReader, payments studentPayments) *ReportService {
	return &ReportService{repo: repo, students: students, payments: payments}
}

// StudentSponsorship filters on university, year_of_study, sponsor_id and status
func (s *ReportService) StudentSponsorship(ctx context.Context, f models.ReportFilters) ([]models.StudentSponsorshipRow, error) {
	rows, err := s.repo.StudentSponsorship(ctx, models.ReportFilters{
		University:  f.University,
		YearOfStudy: f.YearOfStudy,
		SponsorID:   f.SponsorID,
		Status:      f.Status,
	})
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// PaymentSummary filters on semester, date_from, date_to and sponsor_id
func (s *ReportService) PaymentSummary(ctx context.Context, f models.ReportFilters) ([]models.PaymentSummaryRow, error) {
	rows, err := s.repo.PaymentSummary(ctx, models.ReportFilters{
		Semester:  f.Semester,
		DateFrom:  f.DateFrom,
		DateTo:    f.DateTo,
		SponsorID: f.SponsorID,
	})
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// SponsorContribution filters on sponsor_id, date_from and date_to
func (s *ReportService) SponsorContribution(ctx context.Context, f models.ReportFilters) ([]models.SponsorContributionRow, error) {
	rows, err := s.repo.SponsorContribution(ctx, models.ReportFilters{
		SponsorID: f.SponsorID,
		DateFrom:  f.DateFrom,
		DateTo:    f.DateTo,
	})
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// ProgramSummary filters on sponsor_id
func (s *ReportService) ProgramSummary(ctx context.Context, f models.ReportFilters) ([]models.ProgramSummaryRow, error) {
	rows, err := s.repo.ProgramSummary(ctx, models.ReportFilters{SponsorID: f.SponsorID})
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// ActiveCompletedSponsorships filters on status; without it every allocation is listed
func (s *ReportService) ActiveCompletedSponsorships(ctx context.Context, f models.ReportFilters) ([]models.AllocationStatusRow, error) {
	rows, err := s.repo.AllocationsByStatus(ctx, models.ReportFilters{Status: f.Status})
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// StudentsPerUniversity filters on university and year_of_study
func (s *ReportService) StudentsPerUniversity(ctx context.Context, f models.ReportFilters) ([]models.UniversityCount, error) {
	rows, err := s.repo.StudentsPerUniversity(ctx, models.ReportFilters{
		University:  f.University,
		YearOfStudy: f.YearOfStudy,
	})
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return rows, nil
}

// StudentDetail gathers a student with its allocations and payments
func (s *ReportService) StudentDetail(ctx context.Context, studentID int64) (*models.StudentDetail, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.NewQueryError(err)
	}

	allocations, err := s.repo.StudentAllocations(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	payments, err := s.payments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	return &models.StudentDetail{
		Student:     student,
		Allocations: allocations,
		Payments:    payments,
	}, nil
}
