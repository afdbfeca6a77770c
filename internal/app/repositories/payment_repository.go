package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/ssms/scholarship/internal/app/models"
)

const (
	paymentsTable   = "payments"
	paymentIDColumn = "payment_id"
)

// PaymentRecord holds the values of a new payments row
type PaymentRecord struct {
	AllocationID int64
	Amount       decimal.Decimal
	PaymentDate  time.Time
	Semester     string
}

// PaymentRepository handles payment database operations
type PaymentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a payment and returns the generated payment_id
func (r *PaymentRepository) Create(ctx context.Context, rec PaymentRecord) (int64, error) {
	return insertReturningID(ctx, r.db, paymentsTable, paymentIDColumn,
		[]string{"allocation_id", "amount", "payment_date", "semester"},
		[]interface{}{rec.AllocationID, rec.Amount, rec.PaymentDate, rec.Semester},
	)
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	p := &models.Payment{}
	var amount decimal.NullDecimal
	var paid pgtype.Date
	if err := row.Scan(&p.ID, &p.AllocationID, &amount, &paid, &p.Semester); err != nil {
		return nil, err
	}
	p.Amount = amountPtr(amount)
	p.PaymentDate = datePtr(paid)
	return p, nil
}

func (r *PaymentRepository) selectPayments() squirrel.SelectBuilder {
	return r.sb.Select("p.payment_id", "p.allocation_id", "p.amount", "p.payment_date", "p.semester").
		From(paymentsTable + " p")
}

func (r *PaymentRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Payment, error) {
	return selectAll(ctx, r.db, builder, "payments", scanPayment)
}

// List returns every payment ordered by payment_id
func (r *PaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	return r.query(ctx, r.selectPayments().OrderBy("p.payment_id ASC"))
}

// ListByStudent returns the payments made under any allocation of a student
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Payment, error) {
	return r.query(ctx, r.selectPayments().
		Join("sponsorship_allocations sa ON p.allocation_id = sa.allocation_id").
		Where(squirrel.Eq{"sa.student_id": studentID}).
		OrderBy("p.payment_date ASC", "p.payment_id ASC"))
}

// Update writes only the columns present in changes
func (r *PaymentRepository) Update(ctx context.Context, id int64, changes *Changes) error {
	return updateByID(ctx, r.db, paymentsTable, paymentIDColumn, id, changes)
}

// Delete removes a payment by id
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, paymentsTable, paymentIDColumn, id)
}
