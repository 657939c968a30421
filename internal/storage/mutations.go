package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"roster/pkg/logging"
)

// AddDepartment inserts a department.
func (s *Store) AddDepartment(ctx context.Context, name string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.exec(ctx, s.sqlDB, `INSERT INTO departments (name) VALUES (?)`, strings.TrimSpace(name))
	return wrap("add department", err)
}

// AddRole inserts a role. The salary is passed through as entered; the database
// decides whether it is a number.
func (s *Store) AddRole(ctx context.Context, title, salary string, departmentID int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.exec(ctx, s.sqlDB,
		`INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?)`,
		strings.TrimSpace(title), strings.TrimSpace(salary), departmentID,
	)
	return wrap("add role", err)
}

// AddEmployee inserts an employee. A nil managerID stores no manager.
func (s *Store) AddEmployee(ctx context.Context, firstName, lastName string, roleID int64, managerID *int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	_, err := s.exec(ctx, s.sqlDB,
		`INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)`,
		strings.TrimSpace(firstName), strings.TrimSpace(lastName), roleID, nullableID(managerID),
	)
	return wrap("add employee", err)
}

// UpdateRoleDepartment moves a role to another department.
func (s *Store) UpdateRoleDepartment(ctx context.Context, roleID, departmentID int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.exec(ctx, s.sqlDB, `UPDATE roles SET department_id = ? WHERE id = ?`, departmentID, roleID)
	if err != nil {
		return wrap("update role", err)
	}
	return wrap("update role", expectRow(res))
}

// UpdateEmployee sets an employee's role and manager. A nil managerID clears the manager.
func (s *Store) UpdateEmployee(ctx context.Context, employeeID, roleID int64, managerID *int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.exec(ctx, s.sqlDB,
		`UPDATE employees SET role_id = ?, manager_id = ? WHERE id = ?`,
		roleID, nullableID(managerID), employeeID,
	)
	if err != nil {
		return wrap("update employee", err)
	}
	return wrap("update employee", expectRow(res))
}

// DeleteDepartment clears department_id on the roles referencing the department
// and then deletes it, in one transaction.
func (s *Store) DeleteDepartment(ctx context.Context, departmentID int64) error {
	return s.deleteWithDependents(ctx, "delete department",
		`UPDATE roles SET department_id = NULL WHERE department_id = ?`,
		`DELETE FROM departments WHERE id = ?`,
		departmentID,
	)
}

// DeleteRole clears role_id on the employees holding the role and then deletes
// it, in one transaction.
func (s *Store) DeleteRole(ctx context.Context, roleID int64) error {
	return s.deleteWithDependents(ctx, "delete role",
		`UPDATE employees SET role_id = NULL WHERE role_id = ?`,
		`DELETE FROM roles WHERE id = ?`,
		roleID,
	)
}

// DeleteEmployee clears manager_id on the employees reporting to the employee
// and then deletes it, in one transaction.
func (s *Store) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return s.deleteWithDependents(ctx, "delete employee",
		`UPDATE employees SET manager_id = NULL WHERE manager_id = ?`,
		`DELETE FROM employees WHERE id = ?`,
		employeeID,
	)
}

// deleteWithDependents runs the de-reference statement before the delete so no
// foreign key is left dangling, and commits both or neither.
func (s *Store) deleteWithDependents(ctx context.Context, op, clearSQL, deleteSQL string, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := s.exec(ctx, tx, clearSQL, id)
		if err != nil {
			return fmt.Errorf("clear dependents: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			logging.Debug("Storage", "%s: cleared %d dependent rows", op, n)
		}

		res, err = s.exec(ctx, tx, deleteSQL, id)
		if err != nil {
			return err
		}
		return expectRow(res)
	})
	return wrap(op, err)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// nullableID turns an optional foreign key into a bind value.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
