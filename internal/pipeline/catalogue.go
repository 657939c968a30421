package pipeline

import (
	"context"

	"roster/internal/storage"
	"roster/internal/table"
)

// Fetch keys shared by the catalogue.
const (
	fetchDepartments = "departments"
	fetchRoles       = "roles"
	fetchEmployees   = "employees"
	fetchManagers    = "managers"
)

var (
	departmentsFetch = Fetch{
		Key:  fetchDepartments,
		Noun: "departments",
		Load: func(ctx context.Context, s Store) ([]storage.Ref, error) { return s.Departments(ctx) },
	}
	rolesFetch = Fetch{
		Key:  fetchRoles,
		Noun: "roles",
		Load: func(ctx context.Context, s Store) ([]storage.Ref, error) { return s.Roles(ctx) },
	}
	employeesFetch = Fetch{
		Key:  fetchEmployees,
		Noun: "employees",
		Load: func(ctx context.Context, s Store) ([]storage.Ref, error) { return s.Employees(ctx) },
	}
	managersFetch = Fetch{
		Key:   fetchManagers,
		Noun:  "managers",
		Load:  func(ctx context.Context, s Store) ([]storage.Ref, error) { return s.Managers(ctx) },
		Build: ManagerOptions,
	}
)

// Catalogue returns the menu actions in display order.
func Catalogue() []Action {
	return []Action{
		ViewDepartments(),
		ViewRoles(),
		ViewEmployees(),
		AddDepartment(),
		AddRole(),
		AddEmployee(),
		UpdateRoleDepartment(),
		UpdateEmployee(),
		DeleteDepartment(),
		DeleteRole(),
		DeleteEmployee(),
	}
}

// ViewDepartments lists every department.
func ViewDepartments() Action {
	return Action{
		Name:    "View all departments",
		Failure: "viewing departments",
		View: func(ctx context.Context, s Store) ([]table.Record, error) {
			return s.ViewDepartments(ctx)
		},
	}
}

// ViewRoles lists every role with its department name and salary.
func ViewRoles() Action {
	return Action{
		Name:    "View all roles",
		Failure: "viewing roles",
		View: func(ctx context.Context, s Store) ([]table.Record, error) {
			return s.ViewRoles(ctx)
		},
	}
}

// ViewEmployees lists every employee with title, department, salary and manager.
func ViewEmployees() Action {
	return Action{
		Name:    "View all employees",
		Failure: "viewing employees",
		View: func(ctx context.Context, s Store) ([]table.Record, error) {
			return s.ViewEmployees(ctx)
		},
	}
}

// AddDepartment asks for a name and inserts a department.
func AddDepartment() Action {
	return Action{
		Name: "Add a department",
		Questions: []Question{
			Input("name", "Enter new department name to add:"),
		},
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			return s.AddDepartment(ctx, a.Text("name"))
		},
		Success: "New department has been successfully added.",
		Failure: "adding department",
	}
}

// AddRole asks for title, salary and department and inserts a role.
func AddRole() Action {
	return Action{
		Name:    "Add a role",
		Fetches: []Fetch{departmentsFetch},
		Questions: []Question{
			Input("title", "Enter new role name to add:"),
			Input("salary", "Enter the salary for the new role:"),
			Select("department", "Select the department for the new role:", fetchDepartments),
		},
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			departmentID, err := a.ID("department")
			if err != nil {
				return err
			}
			return s.AddRole(ctx, a.Text("title"), a.Text("salary"), departmentID)
		},
		Success: "New role has been successfully added.",
		Failure: "adding role",
	}
}

// AddEmployee asks for a name, a role and an optional manager and inserts an employee.
func AddEmployee() Action {
	return Action{
		Name:    "Add an employee",
		Fetches: []Fetch{rolesFetch, managersFetch},
		Questions: []Question{
			Input("first_name", "Enter new employee's first name:"),
			Input("last_name", "Enter new employee's last name:"),
			Select("role", "Select the role for the new employee:", fetchRoles),
			Select("manager", "Select the manager for the new employee, if any:", fetchManagers),
		},
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			roleID, err := a.ID("role")
			if err != nil {
				return err
			}
			return s.AddEmployee(ctx, a.Text("first_name"), a.Text("last_name"), roleID, a.OptionalID("manager"))
		},
		Success: "New employee has been successfully added.",
		Failure: "adding employee",
	}
}

// UpdateRoleDepartment moves a role to another department.
func UpdateRoleDepartment() Action {
	return Action{
		Name:    "Update a role's department",
		Fetches: []Fetch{rolesFetch, departmentsFetch},
		Questions: []Question{
			Select("role", "Select a role to update:", fetchRoles),
			Select("department", "Select the new department for the role:", fetchDepartments),
		},
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			roleID, err := a.ID("role")
			if err != nil {
				return err
			}
			departmentID, err := a.ID("department")
			if err != nil {
				return err
			}
			return s.UpdateRoleDepartment(ctx, roleID, departmentID)
		},
		Success: "Role's department has been updated successfully.",
		Failure: "updating role",
	}
}

// UpdateEmployee changes an employee's role and manager.
func UpdateEmployee() Action {
	return Action{
		Name:    "Update an employee role or manager",
		Fetches: []Fetch{employeesFetch, rolesFetch, managersFetch},
		Questions: []Question{
			Select("employee", "Select an employee to update:", fetchEmployees),
			Select("role", "Select the new role for the employee:", fetchRoles),
			Select("manager", "Select the new manager, if any, for the employee's new position:", fetchManagers),
		},
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			employeeID, err := a.ID("employee")
			if err != nil {
				return err
			}
			roleID, err := a.ID("role")
			if err != nil {
				return err
			}
			return s.UpdateEmployee(ctx, employeeID, roleID, a.OptionalID("manager"))
		},
		Success: "Employee's role and manager have been updated successfully.",
		Failure: "updating employee",
	}
}

// DeleteDepartment removes a department after confirmation, leaving its roles without one.
func DeleteDepartment() Action {
	return Action{
		Name:    "Delete a department",
		Fetches: []Fetch{departmentsFetch},
		Questions: []Question{
			Select("department", "Select a department to delete:", fetchDepartments),
		},
		Confirm: "Are you sure you want to delete this department?",
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			departmentID, err := a.ID("department")
			if err != nil {
				return err
			}
			return s.DeleteDepartment(ctx, departmentID)
		},
		Success:   "Department has been successfully deleted. Roles that were part of this department must be updated or deleted. Please view roles with missing departments.",
		Cancelled: "Department deletion canceled.",
		Failure:   "deleting department",
	}
}

// DeleteRole removes a role after confirmation, leaving its employees without one.
func DeleteRole() Action {
	return Action{
		Name:    "Delete a role",
		Fetches: []Fetch{rolesFetch},
		Questions: []Question{
			Select("role", "Select a role to delete:", fetchRoles),
		},
		Confirm: "Are you sure you want to delete this role?",
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			roleID, err := a.ID("role")
			if err != nil {
				return err
			}
			return s.DeleteRole(ctx, roleID)
		},
		Success:   "Role has been successfully deleted. Employees who had this role will need to be updated or deleted. Please view employees for missing role titles.",
		Cancelled: "Role deletion canceled.",
		Failure:   "deleting role",
	}
}

// DeleteEmployee removes an employee after confirmation, clearing it as manager of its reports.
func DeleteEmployee() Action {
	return Action{
		Name:    "Delete an employee",
		Fetches: []Fetch{employeesFetch},
		Questions: []Question{
			Select("employee", "Select an employee to delete:", fetchEmployees),
		},
		Confirm: "Are you sure you want to delete this employee?",
		Mutate: func(ctx context.Context, s Store, a Answers) error {
			employeeID, err := a.ID("employee")
			if err != nil {
				return err
			}
			return s.DeleteEmployee(ctx, employeeID)
		},
		Success:   "Employee has been successfully deleted.",
		Cancelled: "Employee deletion canceled.",
		Failure:   "deleting employee",
	}
}
