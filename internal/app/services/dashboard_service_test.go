package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
}

func TestSponsorshipTrendsZeroFills(t *testing.T) {
	store := &fakeDashboardStore{monthly: []models.MonthlyCount{
		{MonthNumber: 7, Count: 1},
		{MonthNumber: 3, Count: 2},
	}}
	svc := NewDashboardService(store, ReportDefaults{TopPrograms: 5, UpcomingMonths: 18}, fixedNow)

	months, err := svc.SponsorshipTrends(context.Background(), nil)
	if err != nil {
		t.Fatalf("SponsorshipTrends: %v", err)
	}
	if store.yearAsked != 2024 {
		t.Errorf("year = %d, want current year", store.yearAsked)
	}
	if len(months) != 12 {
		t.Fatalf("got %d months", len(months))
	}
	for i, m := range months {
		if m.MonthNumber != i+1 || m.Month != time.Month(i+1).String() {
			t.Errorf("position %d = %+v", i, m)
		}
		want := int64(0)
		switch m.MonthNumber {
		case 3:
			want = 2
		case 7:
			want = 1
		}
		if m.Count != want {
			t.Errorf("%s count = %d, want %d", m.Month, m.Count, want)
		}
	}
	if months[0].Month != "January" || months[11].Month != "December" {
		t.Errorf("labels = %s..%s", months[0].Month, months[11].Month)
	}
}

func TestSponsorshipTrendsExplicitYear(t *testing.T) {
	store := &fakeDashboardStore{}
	year := 2019
	if _, err := NewDashboardService(store, ReportDefaults{}, fixedNow).SponsorshipTrends(context.Background(), &year); err != nil {
		t.Fatal(err)
	}
	if store.yearAsked != 2019 {
		t.Errorf("year = %d", store.yearAsked)
	}
}

func TestUpcomingEndDatesWindow(t *testing.T) {
	store := &fakeDashboardStore{}
	svc := NewDashboardService(store, ReportDefaults{TopPrograms: 5, UpcomingMonths: 18}, fixedNow)

	if _, err := svc.UpcomingEndDates(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !store.from.Equal(today) {
		t.Errorf("from = %v, want %v", store.from, today)
	}
	if want := today.AddDate(0, 0, 540); !store.to.Equal(want) {
		t.Errorf("to = %v, want %v", store.to, want)
	}

	months := 1
	if _, err := svc.UpcomingEndDates(context.Background(), &months); err != nil {
		t.Fatal(err)
	}
	if want := today.AddDate(0, 0, 30); !store.to.Equal(want) {
		t.Errorf("to = %v, want %v", store.to, want)
	}

	negative := -1
	if _, err := svc.UpcomingEndDates(context.Background(), &negative); !errors.Is(err, apperrors.ErrInvalidQueryParam) {
		t.Errorf("negative months err = %v", err)
	}

	limit := 1200
	if _, err := svc.UpcomingEndDates(context.Background(), &limit); err != nil {
		t.Fatalf("months=1200: %v", err)
	}
	if want := today.AddDate(0, 0, 36000); !store.to.Equal(want) {
		t.Errorf("to = %v, want %v", store.to, want)
	}

	for _, tooMany := range []int{1201, 100000000, math.MaxInt} {
		store.to = time.Time{}
		n := tooMany
		_, err := svc.UpcomingEndDates(context.Background(), &n)
		if !errors.Is(err, apperrors.ErrInvalidQueryParam) {
			t.Errorf("months=%d err = %v", tooMany, err)
		}
		if !store.to.IsZero() {
			t.Errorf("months=%d reached the store", tooMany)
		}
	}
}

func TestTopProgramsLimit(t *testing.T) {
	store := &fakeDashboardStore{}
	svc := NewDashboardService(store, ReportDefaults{TopPrograms: 5, UpcomingMonths: 18}, fixedNow)

	if _, err := svc.TopProgramsByFunding(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if store.topLimit != 5 {
		t.Errorf("default limit = %d", store.topLimit)
	}

	two := 2
	if _, err := svc.TopProgramsByFunding(context.Background(), &two); err != nil {
		t.Fatal(err)
	}
	if store.topLimit != 2 {
		t.Errorf("limit = %d", store.topLimit)
	}

	zero := 0
	if _, err := svc.TopProgramsByFunding(context.Background(), &zero); !errors.Is(err, apperrors.ErrInvalidQueryParam) {
		t.Errorf("zero limit err = %v", err)
	}
}

func TestSemesterIndex(t *testing.T) {
	tests := []struct {
		label string
		want  *int
	}{
		{"Semester 1", intPtr(1)},
		{"2024 Sem 2", intPtr(2)},
		{"Fall", nil},
		{"", nil},
		{"  Semester 10  ", intPtr(10)},
	}

	for _, tt := range tests {
		got := SemesterIndex(tt.label)
		switch {
		case got == nil && tt.want == nil:
		case got == nil || tt.want == nil || *got != *tt.want:
			t.Errorf("SemesterIndex(%q) = %v, want %v", tt.label, deref(got), deref(tt.want))
		}
	}
}

func TestPaymentsPerSemesterAddsIndex(t *testing.T) {
	store := &fakeDashboardStore{semesters: []models.SemesterPayment{
		{Semester: strPtr("Semester 2"), Amount: 100},
		{Semester: strPtr("Spring"), Amount: 50},
	}}
	rows, err := NewDashboardService(store, ReportDefaults{}, fixedNow).PaymentsPerSemester(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].SemesterIndex == nil || *rows[0].SemesterIndex != 2 {
		t.Errorf("index = %v", rows[0].SemesterIndex)
	}
	if rows[1].SemesterIndex != nil {
		t.Errorf("index = %v, want nil", *rows[1].SemesterIndex)
	}
}

func TestDashboardQueryFailure(t *testing.T) {
	store := &fakeDashboardStore{err: errors.New("connection reset")}
	svc := NewDashboardService(store, ReportDefaults{}, fixedNow)

	if _, err := svc.Totals(context.Background()); !errors.Is(err, apperrors.ErrQuery) {
		t.Errorf("totals err = %v", err)
	}
	if _, err := svc.RecentAllocations(context.Background()); !errors.Is(err, apperrors.ErrQuery) {
		t.Errorf("recent err = %v", err)
	}
}

func TestRecentAllocationsAsksForThree(t *testing.T) {
	store := &fakeDashboardStore{}
	if _, err := NewDashboardService(store, ReportDefaults{}, fixedNow).RecentAllocations(context.Background()); err != nil {
		t.Fatal(err)
	}
	if store.recentSize != 3 {
		t.Errorf("limit = %d, want 3", store.recentSize)
	}
}

func intPtr(n int) *int { return &n }

func deref(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
