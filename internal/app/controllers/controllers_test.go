package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func studentRouter(svc StudentService) *gin.Engine {
	c := NewStudentController(svc)
	r := gin.New()
	r.POST("/add-student/", c.AddStudent)
	r.GET("/show-students/", c.ShowStudents)
	r.PUT("/update-student/:id/", c.UpdateStudent)
	r.DELETE("/delete-student/:id/", c.DeleteStudent)
	return r
}

func TestAddStudentCreated(t *testing.T) {
	svc := &fakeStudentService{}
	r := studentRouter(svc)

	w := perform(r, http.MethodPost, "/add-student/",
		`{"name":"Ama","gender":"F","date_of_birth":"2002-04-01","contact":"0200","email":"ama@example.com","year_of_study":"2"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["message"] != "Student added successfully!" || body["student_id"] != float64(1) {
		t.Errorf("body = %v", body)
	}
	if len(svc.created) != 1 || svc.created[0].Name != "Ama" {
		t.Errorf("created = %+v", svc.created)
	}
}

func TestAddStudentMalformedJSON(t *testing.T) {
	svc := &fakeStudentService{}
	w := perform(studentRouter(svc), http.MethodPost, "/add-student/", `{"name":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if _, ok := decode(t, w)["error"]; !ok {
		t.Error("missing error key")
	}
	if len(svc.created) != 0 {
		t.Error("service must not be called")
	}
}

func TestAddStudentValidationError(t *testing.T) {
	svc := &fakeStudentService{err: apperrors.NewValidationError("All fields are required.")}
	w := perform(studentRouter(svc), http.MethodPost, "/add-student/", `{"name":"Ama"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode(t, w)["error"]; got != "All fields are required." {
		t.Errorf("error = %v", got)
	}
}

func TestShowStudentsKey(t *testing.T) {
	svc := &fakeStudentService{students: []*models.Student{{ID: 3, Name: "Kofi"}}}
	w := perform(studentRouter(svc), http.MethodGet, "/show-students/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	students, ok := decode(t, w)["students"].([]interface{})
	if !ok || len(students) != 1 {
		t.Fatalf("body = %s", w.Body.String())
	}
	if students[0].(map[string]interface{})["student_id"] != float64(3) {
		t.Errorf("student = %v", students[0])
	}
}

func TestShowStudentsStorageFailure(t *testing.T) {
	svc := &fakeStudentService{err: apperrors.NewQueryError(errors.New("connection refused"))}
	w := perform(studentRouter(svc), http.MethodGet, "/show-students/", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode(t, w)["error"]; got != "connection refused" {
		t.Errorf("error = %v", got)
	}
}

func TestUpdateStudent(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
		msg    string
	}{
		{"ok", "/update-student/4/", `{"course":"Law"}`, nil, http.StatusOK, ""},
		{"not found", "/update-student/99/", `{"course":"Law"}`, apperrors.ErrStudentNotFound, http.StatusNotFound, "Student not found."},
		{"empty patch", "/update-student/4/", `{}`, apperrors.NewValidationError("No fields to update."), http.StatusBadRequest, "No fields to update."},
		{"bad id", "/update-student/abc/", `{"course":"Law"}`, nil, http.StatusBadRequest, "Invalid id."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeStudentService{err: tt.err}
			w := perform(studentRouter(svc), http.MethodPut, tt.path, tt.body)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			body := decode(t, w)
			if tt.status == http.StatusOK {
				if body["message"] != "Student updated successfully!" {
					t.Errorf("body = %v", body)
				}
				if got := svc.updated[4].Course; got == nil || *got != "Law" {
					t.Errorf("course = %v", got)
				}
				return
			}
			if body["error"] != tt.msg {
				t.Errorf("error = %v, want %q", body["error"], tt.msg)
			}
		})
	}
}

func TestDeleteStudent(t *testing.T) {
	svc := &fakeStudentService{}
	w := perform(studentRouter(svc), http.MethodDelete, "/delete-student/5/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != 5 {
		t.Errorf("deleted = %v", svc.deleted)
	}

	svc.err = apperrors.ErrStudentNotFound
	w = perform(studentRouter(svc), http.MethodDelete, "/delete-student/5/", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}

func TestAddPaymentDecimalAmount(t *testing.T) {
	svc := &fakePaymentService{}
	c := NewPaymentController(svc)
	r := gin.New()
	r.POST("/add-payment/", c.AddPayment)

	w := perform(r, http.MethodPost, "/add-payment/",
		`{"allocation_id":1,"amount":1250.50,"payment_date":"2024-01-15","semester":"Semester 1"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if decode(t, w)["payment_id"] != float64(7) {
		t.Errorf("body = %s", w.Body.String())
	}
	if got := svc.created[0].Amount; got == nil || got.String() != "1250.5" {
		t.Errorf("amount = %v", got)
	}
}

func dashboardRouter(svc DashboardService) *gin.Engine {
	c := NewDashboardController(svc)
	r := gin.New()
	r.GET("/totals/", c.Totals)
	r.GET("/recent-allocations/", c.RecentAllocations)
	r.GET("/sponsorship-trends/", c.SponsorshipTrends)
	r.GET("/top-programs-by-funding/", c.TopProgramsByFunding)
	r.GET("/upcoming-end-dates/", c.UpcomingEndDates)
	r.GET("/gender-distribution/", c.GenderDistribution)
	return r
}

func TestDashboardTotalsFlat(t *testing.T) {
	svc := &fakeDashboardService{totals: &models.DashboardTotals{}}
	w := perform(dashboardRouter(svc), http.MethodGet, "/totals/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	for _, key := range []string{"total_students", "total_sponsors", "total_programs", "total_active_allocations", "total_payments"} {
		if body[key] != float64(0) {
			t.Errorf("%s = %v", key, body[key])
		}
	}
	if _, wrapped := body["data"]; wrapped {
		t.Error("totals must not be wrapped in data")
	}
}

func TestDashboardRecentAllocationsKey(t *testing.T) {
	svc := &fakeDashboardService{recent: []models.RecentAllocation{{StudentName: "Ama", ProgramName: "STEM"}}}
	w := perform(dashboardRouter(svc), http.MethodGet, "/recent-allocations/", "")

	rows, ok := decode(t, w)["recent_allocations"].([]interface{})
	if !ok || len(rows) != 1 {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestDashboardQueryParams(t *testing.T) {
	svc := &fakeDashboardService{trends: []models.MonthlyCount{}}
	r := dashboardRouter(svc)

	w := perform(r, http.MethodGet, "/sponsorship-trends/?year=2024", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.year == nil || *svc.year != 2024 {
		t.Errorf("year = %v", svc.year)
	}
	if _, ok := decode(t, w)["data"]; !ok {
		t.Error("missing data key")
	}

	perform(r, http.MethodGet, "/sponsorship-trends/", "")
	if svc.year != nil {
		t.Errorf("year = %v, want nil", *svc.year)
	}

	perform(r, http.MethodGet, "/top-programs-by-funding/?limit=2", "")
	if svc.limit == nil || *svc.limit != 2 {
		t.Errorf("limit = %v", svc.limit)
	}

	perform(r, http.MethodGet, "/upcoming-end-dates/?months=6", "")
	if svc.months == nil || *svc.months != 6 {
		t.Errorf("months = %v", svc.months)
	}
}

func TestDashboardMalformedQueryParam(t *testing.T) {
	r := dashboardRouter(&fakeDashboardService{})

	for _, path := range []string{
		"/sponsorship-trends/?year=abc",
		"/top-programs-by-funding/?limit=two",
		"/upcoming-end-dates/?months=1.5",
	} {
		w := perform(r, http.MethodGet, path, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", path, w.Code)
		}
	}
}

func TestDashboardStorageFailure(t *testing.T) {
	svc := &fakeDashboardService{err: apperrors.NewQueryError(errors.New("relation does not exist"))}
	w := perform(dashboardRouter(svc), http.MethodGet, "/gender-distribution/", "")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", w.Code)
	}
}

func reportRouter(svc ReportService) *gin.Engine {
	c := NewReportController(svc)
	r := gin.New()
	r.GET("/student-sponsorship/", c.StudentSponsorship)
	r.GET("/payment-summary/", c.PaymentSummary)
	r.GET("/student-detail/:id/", c.StudentDetail)
	return r
}

func TestReportFiltersForwarded(t *testing.T) {
	svc := &fakeReportService{}
	w := perform(reportRouter(svc), http.MethodGet,
		"/student-sponsorship/?university=Legon&year_of_study=3&sponsor_id=2&status=Active", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	f := svc.filters
	if f.University == nil || *f.University != "Legon" {
		t.Errorf("university = %v", f.University)
	}
	if f.YearOfStudy == nil || *f.YearOfStudy != 3 {
		t.Errorf("year_of_study = %v", f.YearOfStudy)
	}
	if f.SponsorID == nil || *f.SponsorID != 2 {
		t.Errorf("sponsor_id = %v", f.SponsorID)
	}
	if f.Status == nil || *f.Status != "Active" {
		t.Errorf("status = %v", f.Status)
	}
}

func TestReportMalformedFilter(t *testing.T) {
	svc := &fakeReportService{}
	r := reportRouter(svc)

	w := perform(r, http.MethodGet, "/payment-summary/?date_from=15-01-2024", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("date status = %d", w.Code)
	}

	w = perform(r, http.MethodGet, "/student-sponsorship/?sponsor_id=x", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("sponsor_id status = %d", w.Code)
	}
}

func TestStudentDetail(t *testing.T) {
	svc := &fakeReportService{detail: &models.StudentDetail{
		Student:     &models.Student{ID: 1, Name: "Ama"},
		Allocations: []models.StudentAllocationRow{},
		Payments:    []*models.Payment{},
	}}
	w := perform(reportRouter(svc), http.MethodGet, "/student-detail/1/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	for _, key := range []string{"student", "allocations", "payments"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing %s", key)
		}
	}

	svc.err = apperrors.ErrStudentNotFound
	w = perform(reportRouter(svc), http.MethodGet, "/student-detail/2/", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown student status = %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"up", nil, http.StatusOK},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthController(fakePinger{err: tt.err}).Health)

			w := perform(r, http.MethodGet, "/health", "")
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}
