package repositories

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recordedCall struct {
	sql  string
	args []any
}

// fakeDB serves queued results in call order and records every statement
type fakeDB struct {
	calls []recordedCall

	execTags  []string
	rowValues [][]any
	resultSet [][][]any
	err       error
}

func (f *fakeDB) record(sql string, args []any) {
	f.calls = append(f.calls, recordedCall{sql: sql, args: args})
}

func (f *fakeDB) lastCall() recordedCall {
	if len(f.calls) == 0 {
		return recordedCall{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql, args)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	tag := "UPDATE 0"
	if len(f.execTags) > 0 {
		tag, f.execTags = f.execTags[0], f.execTags[1:]
	}
	return pgconn.NewCommandTag(tag), nil
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	if f.err != nil {
		return nil, f.err
	}
	var data [][]any
	if len(f.resultSet) > 0 {
		data, f.resultSet = f.resultSet[0], f.resultSet[1:]
	}
	return &fakeRows{data: data}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	if len(f.rowValues) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	var values []any
	values, f.rowValues = f.rowValues[0], f.rowValues[1:]
	return fakeRow{values: values}
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	data [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.pos-1], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

// assign copies values into scan destinations. A nil value zeroes the
// destination; a value of type T fills a **T destination.
func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case target.Kind() == reflect.Ptr && v.Type().AssignableTo(target.Type().Elem()):
			ptr := reflect.New(target.Type().Elem())
			ptr.Elem().Set(v)
			target.Set(ptr)
		case v.Type().ConvertibleTo(target.Type()):
			target.Set(v.Convert(target.Type()))
		default:
			return fmt.Errorf("fake scan: cannot assign %T to %s", values[i], target.Type())
		}
	}
	return nil
}
