package services

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func validStudent() dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		Name:        "Ann",
		Gender:      "F",
		DateOfBirth: "2001-05-06",
		Contact:     "0700",
		Email:       "ann@example.com",
	}
}

func TestStudentCreateRequiresEveryMandatoryField(t *testing.T) {
	blank := []func(*dto.CreateStudentRequest){
		func(r *dto.CreateStudentRequest) { r.Name = "" },
		func(r *dto.CreateStudentRequest) { r.Gender = "" },
		func(r *dto.CreateStudentRequest) { r.DateOfBirth = "" },
		func(r *dto.CreateStudentRequest) { r.Contact = "" },
		func(r *dto.CreateStudentRequest) { r.Email = "" },
	}

	for i, mutate := range blank {
		store := &fakeStudentStore{}
		req := validStudent()
		mutate(&req)

		_, err := NewStudentService(store).Create(context.Background(), req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("case %d: err = %v, want validation error", i, err)
		}
		if err.Error() != "All fields are required." {
			t.Errorf("case %d: message = %q", i, err.Error())
		}
		if len(store.created) != 0 {
			t.Errorf("case %d: a row was written", i)
		}
	}
}

func TestStudentCreateRejectsMalformedDate(t *testing.T) {
	req := validStudent()
	req.DateOfBirth = "06/05/2001"

	_, err := NewStudentService(&fakeStudentStore{}).Create(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestStudentCreateMapsBlankYearToNull(t *testing.T) {
	store := &fakeStudentStore{}
	req := validStudent()
	var year dto.FlexInt64
	if err := json.Unmarshal([]byte(`""`), &year); err != nil {
		t.Fatal(err)
	}
	req.YearOfStudy = &year

	id, err := NewStudentService(store).Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d", id)
	}
	if store.created[0].YearOfStudy != nil {
		t.Errorf("year_of_study = %v, want nil", *store.created[0].YearOfStudy)
	}
	if store.created[0].DateOfBirth.Format(models.DateLayout) != "2001-05-06" {
		t.Errorf("date_of_birth = %v", store.created[0].DateOfBirth)
	}
}

func TestStudentCreateStorageFailureIsPersistenceError(t *testing.T) {
	store := &fakeStudentStore{err: errors.New(`duplicate key value violates unique constraint "students_email_key"`)}

	_, err := NewStudentService(store).Create(context.Background(), validStudent())
	if !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("err = %v, want persistence error", err)
	}
	if err.Error() != `duplicate key value violates unique constraint "students_email_key"` {
		t.Errorf("message = %q", err.Error())
	}
}

func TestStudentUpdateIsSparse(t *testing.T) {
	store := &fakeStudentStore{students: map[int64]*models.Student{1: {ID: 1}}}

	err := NewStudentService(store).Update(context.Background(), 1, dto.UpdateStudentRequest{Email: strPtr("new@example.com")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := store.updated.Columns(); !reflect.DeepEqual(got, []string{"email"}) {
		t.Fatalf("columns = %v, want [email]", got)
	}
}

func TestStudentUpdateErrors(t *testing.T) {
	store := &fakeStudentStore{students: map[int64]*models.Student{1: {ID: 1}}}
	svc := NewStudentService(store)

	if err := svc.Update(context.Background(), 1, dto.UpdateStudentRequest{}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("empty patch err = %v", err)
	}
	if err := svc.Update(context.Background(), 2, dto.UpdateStudentRequest{Name: strPtr("Bob")}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("unknown id err = %v", err)
	}
	if err := svc.Update(context.Background(), 1, dto.UpdateStudentRequest{DateOfBirth: strPtr("")}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank date err = %v", err)
	}
}

func TestStudentUpdateRejectsBlankRequiredText(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateStudentRequest
	}{
		{"name", dto.UpdateStudentRequest{Name: strPtr("")}},
		{"gender", dto.UpdateStudentRequest{Gender: strPtr("  ")}},
		{"contact", dto.UpdateStudentRequest{Contact: strPtr("")}},
		{"email", dto.UpdateStudentRequest{Email: strPtr(""), Course: strPtr("Law")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStudentStore{students: map[int64]*models.Student{1: {ID: 1}}}

			err := NewStudentService(store).Update(context.Background(), 1, tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if err.Error() != tt.name+" must not be blank." {
				t.Errorf("message = %q", err.Error())
			}
			if store.updated != nil {
				t.Error("a row was updated")
			}
		})
	}
}

func TestStudentUpdateZeroYearClearsColumn(t *testing.T) {
	for _, raw := range []string{`0`, `""`} {
		t.Run(raw, func(t *testing.T) {
			store := &fakeStudentStore{students: map[int64]*models.Student{1: {ID: 1}}}
			var year dto.FlexInt64
			if err := json.Unmarshal([]byte(raw), &year); err != nil {
				t.Fatal(err)
			}

			err := NewStudentService(store).Update(context.Background(), 1, dto.UpdateStudentRequest{YearOfStudy: &year})
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if got := store.updated.Columns(); !reflect.DeepEqual(got, []string{"year_of_study"}) {
				t.Fatalf("columns = %v", got)
			}
			v, _ := store.updated.Value("year_of_study")
			if y, ok := v.(*int); !ok || y != nil {
				t.Errorf("year_of_study = %#v, want (*int)(nil)", v)
			}
		})
	}
}

func TestStudentDeleteTwice(t *testing.T) {
	store := &fakeStudentStore{students: map[int64]*models.Student{4: {ID: 4}}}
	svc := NewStudentService(store)

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err := svc.Delete(context.Background(), 4)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
	if err.Error() != "Student not found." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestStudentListQueryFailure(t *testing.T) {
	_, err := NewStudentService(&fakeStudentStore{err: errors.New("timeout")}).List(context.Background())
	if !errors.Is(err, apperrors.ErrQuery) {
		t.Fatalf("err = %v, want query error", err)
	}
}

func TestAllocationCreateDefaultsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"omitted", "", "Active"},
		{"blank", "   ", "Active"},
		{"given", "Suspended", "Suspended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeAllocationStore{}
			_, err := NewAllocationService(store).Create(context.Background(), dto.CreateAllocationRequest{
				StudentID: 1,
				ProgramID: 2,
				StartDate: "2024-01-01",
				EndDate:   "2025-01-01",
				Status:    tt.status,
			})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if store.created[0].Status != tt.want {
				t.Errorf("status = %q, want %q", store.created[0].Status, tt.want)
			}
		})
	}
}

func validAllocation() dto.CreateAllocationRequest {
	return dto.CreateAllocationRequest{
		StudentID: 1,
		ProgramID: 2,
		StartDate: "2024-01-01",
		EndDate:   "2025-01-01",
	}
}

func TestAllocationCreateRequiresEveryMandatoryField(t *testing.T) {
	tests := []struct {
		name  string
		blank func(*dto.CreateAllocationRequest)
	}{
		{"student_id", func(r *dto.CreateAllocationRequest) { r.StudentID = 0 }},
		{"program_id", func(r *dto.CreateAllocationRequest) { r.ProgramID = 0 }},
		{"start_date", func(r *dto.CreateAllocationRequest) { r.StartDate = "" }},
		{"end_date", func(r *dto.CreateAllocationRequest) { r.EndDate = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeAllocationStore{}
			req := validAllocation()
			tt.blank(&req)

			_, err := NewAllocationService(store).Create(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if err.Error() != "student_id, program_id, start_date, and end_date are required." {
				t.Errorf("message = %q", err.Error())
			}
			if len(store.created) != 0 {
				t.Error("a row was written")
			}
		})
	}
}

func TestAllocationUpdateColumnOrderIsFixed(t *testing.T) {
	store := &fakeAllocationStore{}
	err := NewAllocationService(store).Update(context.Background(), 1, dto.UpdateAllocationRequest{
		Status:  strPtr("Completed"),
		EndDate: strPtr("2025-06-30"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := store.updated.Columns(); !reflect.DeepEqual(got, []string{"end_date", "status"}) {
		t.Fatalf("columns = %v", got)
	}
}

func TestProgramCreateRequiresAmount(t *testing.T) {
	zero := decimal.Zero
	amount := decimal.NewFromInt(1500)

	tests := []struct {
		name    string
		amount  *decimal.Decimal
		wantErr bool
	}{
		{"missing", nil, true},
		{"zero", &zero, true},
		{"present", &amount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeProgramStore{}
			_, err := NewProgramService(store).Create(context.Background(), dto.CreateProgramRequest{
				SponsorID:        3,
				ProgramName:      "STEM",
				AmountPerStudent: tt.amount,
				Duration:         "4 years",
			})
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Fatalf("err = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if !store.created[0].AmountPerStudent.Equal(amount) {
				t.Errorf("amount = %s", store.created[0].AmountPerStudent)
			}
		})
	}
}

func TestProgramCreateRequiresEveryMandatoryField(t *testing.T) {
	amount := decimal.NewFromInt(1500)
	tests := []struct {
		name  string
		blank func(*dto.CreateProgramRequest)
	}{
		{"sponsor_id", func(r *dto.CreateProgramRequest) { r.SponsorID = 0 }},
		{"program_name", func(r *dto.CreateProgramRequest) { r.ProgramName = "" }},
		{"amount_per_student", func(r *dto.CreateProgramRequest) { r.AmountPerStudent = nil }},
		{"duration", func(r *dto.CreateProgramRequest) { r.Duration = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeProgramStore{}
			req := dto.CreateProgramRequest{
				SponsorID:        3,
				ProgramName:      "STEM",
				AmountPerStudent: &amount,
				Duration:         "4 years",
			}
			tt.blank(&req)

			_, err := NewProgramService(store).Create(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if err.Error() != "All fields are required." {
				t.Errorf("message = %q", err.Error())
			}
			if len(store.created) != 0 {
				t.Error("a row was written")
			}
		})
	}
}

func validPayment() dto.CreatePaymentRequest {
	amount := decimal.NewFromInt(750)
	return dto.CreatePaymentRequest{
		AllocationID: 1,
		Amount:       &amount,
		PaymentDate:  "2024-02-01",
		Semester:     "Semester 1",
	}
}

func TestPaymentCreateRequiresEveryMandatoryField(t *testing.T) {
	zero := decimal.Zero
	tests := []struct {
		name  string
		blank func(*dto.CreatePaymentRequest)
	}{
		{"allocation_id", func(r *dto.CreatePaymentRequest) { r.AllocationID = 0 }},
		{"amount", func(r *dto.CreatePaymentRequest) { r.Amount = nil }},
		{"zero amount", func(r *dto.CreatePaymentRequest) { r.Amount = &zero }},
		{"payment_date", func(r *dto.CreatePaymentRequest) { r.PaymentDate = "" }},
		{"semester", func(r *dto.CreatePaymentRequest) { r.Semester = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakePaymentStore{}
			req := validPayment()
			tt.blank(&req)

			_, err := NewPaymentService(store).Create(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if err.Error() != "allocation_id, amount, payment_date, and semester are required." {
				t.Errorf("message = %q", err.Error())
			}
			if len(store.created) != 0 {
				t.Error("a row was written")
			}
		})
	}
}

func TestPaymentCreateStoresRecord(t *testing.T) {
	store := &fakePaymentStore{}
	if _, err := NewPaymentService(store).Create(context.Background(), validPayment()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(store.created) != 1 || store.created[0].Semester != "Semester 1" || !store.created[0].Amount.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("created = %+v", store.created)
	}
}

func validSponsor() dto.CreateSponsorRequest {
	return dto.CreateSponsorRequest{
		OrganizationName: "Acme Foundation",
		ContactPerson:    "Jane",
		Contact:          "0711",
		Email:            "grants@acme.org",
		Address:          "Plot 4, Kampala",
	}
}

func TestSponsorCreateRequiresEveryMandatoryField(t *testing.T) {
	tests := []struct {
		name  string
		blank func(*dto.CreateSponsorRequest)
	}{
		{"organization_name", func(r *dto.CreateSponsorRequest) { r.OrganizationName = "" }},
		{"contact_person", func(r *dto.CreateSponsorRequest) { r.ContactPerson = "" }},
		{"contact", func(r *dto.CreateSponsorRequest) { r.Contact = "" }},
		{"email", func(r *dto.CreateSponsorRequest) { r.Email = "" }},
		{"address", func(r *dto.CreateSponsorRequest) { r.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeSponsorStore{}
			req := validSponsor()
			tt.blank(&req)

			_, err := NewSponsorService(store).Create(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if err.Error() != "All fields are required." {
				t.Errorf("message = %q", err.Error())
			}
			if len(store.created) != 0 {
				t.Error("a row was written")
			}
		})
	}
}

func TestSponsorCreate(t *testing.T) {
	store := &fakeSponsorStore{}
	id, err := NewSponsorService(store).Create(context.Background(), validSponsor())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 1 || store.created[0].OrganizationName != "Acme Foundation" {
		t.Fatalf("id = %d, created = %+v", id, store.created)
	}

	_, err = NewSponsorService(&fakeSponsorStore{err: errors.New("duplicate key")}).Create(context.Background(), validSponsor())
	if !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("err = %v, want persistence error", err)
	}
}

func TestSponsorUpdateEmptyPatch(t *testing.T) {
	err := NewSponsorService(nil).Update(context.Background(), 1, dto.UpdateSponsorRequest{})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("err = %v", err)
	}
}

func TestSponsorUpdateRejectsBlankRequiredText(t *testing.T) {
	err := NewSponsorService(&fakeSponsorStore{}).Update(context.Background(), 1, dto.UpdateSponsorRequest{
		OrganizationName: strPtr(" "),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if err.Error() != "organization_name must not be blank." {
		t.Errorf("message = %q", err.Error())
	}
}
