package storage

import (
	"context"
	"database/sql"
	"fmt"

	"roster/internal/table"
)

const (
	viewDepartmentsQuery = `SELECT id, name FROM departments ORDER BY id`

	viewRolesQuery = `SELECT r.id, r.title, d.name AS department, r.salary
		FROM roles r
		LEFT JOIN departments d ON r.department_id = d.id
		ORDER BY r.id`

	viewEmployeesQuery = `SELECT e.id, e.first_name, e.last_name, r.title, d.name AS department, r.salary,
			m.first_name || ' ' || m.last_name AS manager
		FROM employees e
		LEFT JOIN roles r ON e.role_id = r.id
		LEFT JOIN departments d ON r.department_id = d.id
		LEFT JOIN employees m ON e.manager_id = m.id
		ORDER BY e.id`
)

// ViewDepartments returns all departments as table records.
func (s *Store) ViewDepartments(ctx context.Context) ([]table.Record, error) {
	return s.records(ctx, "view departments", viewDepartmentsQuery)
}

// ViewRoles returns all roles with their department name. Roles without a
// department are included with an empty department.
func (s *Store) ViewRoles(ctx context.Context) ([]table.Record, error) {
	return s.records(ctx, "view roles", viewRolesQuery)
}

// ViewEmployees returns all employees with title, department, salary and manager name.
func (s *Store) ViewEmployees(ctx context.Context) ([]table.Record, error) {
	return s.records(ctx, "view employees", viewEmployeesQuery)
}

func (s *Store) records(ctx context.Context, op, query string) ([]table.Record, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, wrap(op, err)
	}
	return records, nil
}

// scanRecords reads every row into a record, keeping the column order of the query.
func scanRecords(rows *sql.Rows) ([]table.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var records []table.Record
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		rec := make(table.Record, len(columns))
		for i, col := range columns {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec[i] = table.Field{Name: col, Value: v}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
