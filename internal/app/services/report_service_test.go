package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

func TestReportsPassOnlySupportedFilters(t *testing.T) {
	uni := "Makerere"
	sponsor := int64(2)
	status := "Completed"
	semester := "Semester 1"
	all := models.ReportFilters{University: &uni, SponsorID: &sponsor, Status: &status, Semester: &semester}

	store := &fakeReportStore{}
	svc := NewReportService(store, &fakeStudentStore{}, &fakePaymentStore{})

	if _, err := svc.ProgramSummary(context.Background(), all); err != nil {
		t.Fatal(err)
	}
	if store.lastFilters.SponsorID == nil || store.lastFilters.University != nil || store.lastFilters.Status != nil {
		t.Errorf("program summary filters = %+v", store.lastFilters)
	}

	if _, err := svc.ActiveCompletedSponsorships(context.Background(), all); err != nil {
		t.Fatal(err)
	}
	if store.lastFilters.Status == nil || store.lastFilters.SponsorID != nil {
		t.Errorf("status report filters = %+v", store.lastFilters)
	}

	if _, err := svc.PaymentSummary(context.Background(), all); err != nil {
		t.Fatal(err)
	}
	if store.lastFilters.Semester == nil || store.lastFilters.University != nil {
		t.Errorf("payment summary filters = %+v", store.lastFilters)
	}
}

func TestStudentDetail(t *testing.T) {
	students := &fakeStudentStore{students: map[int64]*models.Student{1: {ID: 1, Name: "Ann"}}}
	reports := &fakeReportStore{allocations: []models.StudentAllocationRow{{AllocationID: 9}}}
	payments := &fakePaymentStore{byStudent: []*models.Payment{{ID: 3}}}
	svc := NewReportService(reports, students, payments)

	detail, err := svc.StudentDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("StudentDetail: %v", err)
	}
	if detail.Student.Name != "Ann" || len(detail.Allocations) != 1 || len(detail.Payments) != 1 {
		t.Fatalf("detail = %+v", detail)
	}

	if _, err := svc.StudentDetail(context.Background(), 2); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("unknown student err = %v", err)
	}
}

func TestReportQueryFailure(t *testing.T) {
	svc := NewReportService(&fakeReportStore{err: errors.New("boom")}, &fakeStudentStore{}, &fakePaymentStore{})
	if _, err := svc.StudentSponsorship(context.Background(), models.ReportFilters{}); !errors.Is(err, apperrors.ErrQuery) {
		t.Fatalf("err = %v", err)
	}
}
