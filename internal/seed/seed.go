// Package seed loads a small demo data set into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ssms/scholarship/internal/app/models"
	appRepos "github.com/ssms/scholarship/internal/app/repositories"
)

type studentStore interface {
	Create(ctx context.Context, rec appRepos.StudentRecord) (int64, error)
	List(ctx context.Context) ([]*models.Student, error)
}

type sponsorStore interface {
	Create(ctx context.Context, rec appRepos.SponsorRecord) (int64, error)
}

type programStore interface {
	Create(ctx context.Context, rec appRepos.ProgramRecord) (int64, error)
}

type allocationStore interface {
	Create(ctx context.Context, rec appRepos.AllocationRecord) (int64, error)
}

type paymentStore interface {
	Create(ctx context.Context, rec appRepos.PaymentRecord) (int64, error)
}

// Stores are the repositories the seeder writes through
type Stores struct {
	Students    studentStore
	Sponsors    sponsorStore
	Programs    programStore
	Allocations allocationStore
	Payments    paymentStore
}

// FromRepositories adapts the repository container
func FromRepositories(repos *appRepos.Repositories) Stores {
	return Stores{
		Students:    repos.StudentRepository,
		Sponsors:    repos.SponsorRepository,
		Programs:    repos.ProgramRepository,
		Allocations: repos.AllocationRepository,
		Payments:    repos.PaymentRepository,
	}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// CreateDemoData inserts sponsors, programs, students, allocations and
// payments when the students table is empty. Allocation dates are relative
// to now so the dashboard widgets have something to show.
func CreateDemoData(ctx context.Context, s Stores, now time.Time, lgr zerolog.Logger) error {
	existing, err := s.Students.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing students: %w", err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("students", len(existing)).Msg("Database already has data, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Creating demo data...")

	sponsors := []appRepos.SponsorRecord{
		{OrganizationName: "Volta Foundation", ContactPerson: "Efua Mensah", Contact: "+233201234567", Email: "grants@volta.example.org", Address: "12 Ring Road, Accra"},
		{OrganizationName: "Northern Mining Trust", ContactPerson: "Ibrahim Sule", Contact: "+233244556677", Email: "trust@nmt.example.com", Address: "4 Market Street, Tamale"},
	}
	sponsorIDs := make([]int64, len(sponsors))
	for i, rec := range sponsors {
		if sponsorIDs[i], err = s.Sponsors.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to create sponsor %q: %w", rec.OrganizationName, err)
		}
	}

	programs := []appRepos.ProgramRecord{
		{SponsorID: sponsorIDs[0], ProgramName: "STEM Excellence", AmountPerStudent: decimal.RequireFromString("2500.00"), Duration: "4 years"},
		{SponsorID: sponsorIDs[0], ProgramName: "Girls in Engineering", AmountPerStudent: decimal.RequireFromString("1800.00"), Duration: "2 years"},
		{SponsorID: sponsorIDs[1], ProgramName: "Community Bursary", AmountPerStudent: decimal.RequireFromString("950.50"), Duration: "1 year"},
	}
	programIDs := make([]int64, len(programs))
	for i, rec := range programs {
		if programIDs[i], err = s.Programs.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to create program %q: %w", rec.ProgramName, err)
		}
	}

	students := []appRepos.StudentRecord{
		{Name: "Ama Owusu", Gender: "Female", DateOfBirth: day(2003, time.April, 2), Contact: "+233209998877", Email: "ama.owusu@example.com", University: strPtr("University of Ghana"), Course: strPtr("Computer Science"), YearOfStudy: intPtr(2)},
		{Name: "Kofi Boateng", Gender: "Male", DateOfBirth: day(2001, time.October, 17), Contact: "+233245551122", Email: "kofi.b@example.com", University: strPtr("KNUST"), Course: strPtr("Civil Engineering"), YearOfStudy: intPtr(4)},
		{Name: "Zainab Alhassan", Gender: "Female", DateOfBirth: day(2004, time.January, 9), Contact: "+233271234000", Email: "zainab.a@example.com", University: strPtr("University for Development Studies"), Course: strPtr("Agriculture"), YearOfStudy: intPtr(1)},
	}
	studentIDs := make([]int64, len(students))
	for i, rec := range students {
		if studentIDs[i], err = s.Students.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to create student %q: %w", rec.Name, err)
		}
	}

	today := models.NewDate(now).Time
	allocations := []appRepos.AllocationRecord{
		{StudentID: studentIDs[0], ProgramID: programIDs[0], StartDate: today.AddDate(-1, 0, 0), EndDate: today.AddDate(3, 0, 0), Status: string(models.StatusActive)},
		{StudentID: studentIDs[1], ProgramID: programIDs[1], StartDate: today.AddDate(-2, 0, 0), EndDate: today.AddDate(0, 4, 0), Status: string(models.StatusActive)},
		{StudentID: studentIDs[2], ProgramID: programIDs[2], StartDate: today.AddDate(-1, -6, 0), EndDate: today.AddDate(0, -6, 0), Status: string(models.StatusCompleted)},
	}
	allocationIDs := make([]int64, len(allocations))
	for i, rec := range allocations {
		if allocationIDs[i], err = s.Allocations.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to create allocation %d: %w", i+1, err)
		}
	}

	// Payment failures are collected so one bad row does not hide the rest
	var paymentErr error
	payments := []appRepos.PaymentRecord{
		{AllocationID: allocationIDs[0], Amount: decimal.RequireFromString("1250.00"), PaymentDate: today.AddDate(0, -10, 0), Semester: "Semester 1"},
		{AllocationID: allocationIDs[0], Amount: decimal.RequireFromString("1250.00"), PaymentDate: today.AddDate(0, -4, 0), Semester: "Semester 2"},
		{AllocationID: allocationIDs[1], Amount: decimal.RequireFromString("900.00"), PaymentDate: today.AddDate(0, -3, 0), Semester: "Semester 3"},
		{AllocationID: allocationIDs[2], Amount: decimal.RequireFromString("950.50"), PaymentDate: today.AddDate(-1, -3, 0), Semester: "Semester 1"},
	}
	for _, rec := range payments {
		if _, err := s.Payments.Create(ctx, rec); err != nil {
			lgr.Error().Err(err).Int64("allocation_id", rec.AllocationID).Msg("Error creating demo payment")
			paymentErr = errors.Join(paymentErr, err)
		}
	}
	if paymentErr != nil {
		return paymentErr
	}

	lgr.Info().
		Int("sponsors", len(sponsors)).
		Int("programs", len(programs)).
		Int("students", len(students)).
		Int("allocations", len(allocations)).
		Int("payments", len(payments)).
		Msg("Demo data created")
	return nil
}
