package cli

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/ogurasousui/employee-tracker/internal/core/department"
	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
	"github.com/shopspring/decimal"
)

type answer struct {
	selectLabel string
	text        string
	isSelect    bool
}

func pick(label string) answer { return answer{selectLabel: label, isSelect: true} }
func text(s string) answer     { return answer{text: s} }

// scriptedPrompter は台本どおりに回答する Prompter です。台本が尽きると中断を返します。
type scriptedPrompter struct {
	answers  []answer
	asked    []string
	options  map[string][]string
	rejected []string
}

func newScriptedPrompter(answers ...answer) *scriptedPrompter {
	return &scriptedPrompter{answers: answers, options: make(map[string][]string)}
}

func (p *scriptedPrompter) next() (answer, bool) {
	if len(p.answers) == 0 {
		return answer{}, false
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}

func (p *scriptedPrompter) Select(message string, options []string) (int, error) {
	p.asked = append(p.asked, message)
	p.options[message] = append([]string(nil), options...)

	a, ok := p.next()
	if !ok {
		return 0, terminal.InterruptErr
	}
	if !a.isSelect {
		return 0, fmt.Errorf("script expected input, got select %q", message)
	}
	for i, o := range options {
		if o == a.selectLabel {
			return i, nil
		}
	}
	return 0, fmt.Errorf("option %q not offered for %q: %v", a.selectLabel, message, options)
}

func (p *scriptedPrompter) Input(message string, validate func(string) error) (string, error) {
	p.asked = append(p.asked, message)
	for {
		a, ok := p.next()
		if !ok {
			return "", terminal.InterruptErr
		}
		if a.isSelect {
			return "", fmt.Errorf("script expected select, got input %q", message)
		}
		if validate != nil {
			if err := validate(a.text); err != nil {
				p.rejected = append(p.rejected, a.text)
				continue
			}
		}
		return a.text, nil
	}
}

func (p *scriptedPrompter) timesAsked(message string) int {
	n := 0
	for _, m := range p.asked {
		if m == message {
			n++
		}
	}
	return n
}

type renderedTable struct {
	header []string
	rows   [][]string
}

type recordingRenderer struct {
	tables []renderedTable
}

func (r *recordingRenderer) Render(header []string, rows [][]string) {
	r.tables = append(r.tables, renderedTable{header: header, rows: rows})
}

func (r *recordingRenderer) last() renderedTable {
	if len(r.tables) == 0 {
		return renderedTable{}
	}
	return r.tables[len(r.tables)-1]
}

// fakeDirectory は 3 つのユースケースをメモリ上で実装します。
type fakeDirectory struct {
	departments []*department.Department
	roles       []*role.Role
	employees   []*employee.Employee
	seq         int64
	calls       []string
	failures    map[string]error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{failures: make(map[string]error)}
}

func (f *fakeDirectory) call(name string) error {
	f.calls = append(f.calls, name)
	return f.failures[name]
}

func (f *fakeDirectory) called(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeDirectory) nextID() int64 {
	f.seq++
	return f.seq
}

func (f *fakeDirectory) seedDepartment(name string) *department.Department {
	d := &department.Department{ID: f.nextID(), Name: name}
	f.departments = append(f.departments, d)
	return d
}

func (f *fakeDirectory) seedRole(title, salary string, departmentID int64) *role.Role {
	r := &role.Role{ID: f.nextID(), Title: title, Salary: decimal.RequireFromString(salary), DepartmentID: departmentID}
	f.roles = append(f.roles, r)
	return r
}

func (f *fakeDirectory) seedEmployee(first, last string, roleID int64, managerID *int64) *employee.Employee {
	e := &employee.Employee{ID: f.nextID(), FirstName: first, LastName: last, RoleID: roleID, ManagerID: managerID}
	f.employees = append(f.employees, e)
	return e
}

func (f *fakeDirectory) findDepartment(id int64) *department.Department {
	for _, d := range f.departments {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (f *fakeDirectory) findRole(id int64) *role.Role {
	for _, r := range f.roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (f *fakeDirectory) findEmployee(id int64) *employee.Employee {
	for _, e := range f.employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// department.UseCase

func (f *fakeDirectory) ListDepartments(context.Context) ([]*department.Department, error) {
	if err := f.call("ListDepartments"); err != nil {
		return nil, err
	}
	return append([]*department.Department(nil), f.departments...), nil
}

func (f *fakeDirectory) CreateDepartment(_ context.Context, name string) (*department.Department, error) {
	if err := f.call("CreateDepartment"); err != nil {
		return nil, err
	}
	return f.seedDepartment(name), nil
}

func (f *fakeDirectory) DeleteDepartment(_ context.Context, id int64) (*department.Department, error) {
	if err := f.call("DeleteDepartment"); err != nil {
		return nil, err
	}
	for i, d := range f.departments {
		if d.ID == id {
			f.departments = append(f.departments[:i], f.departments[i+1:]...)
			return d, nil
		}
	}
	return nil, department.ErrDepartmentNotFound
}

func (f *fakeDirectory) DepartmentBudget(_ context.Context, id int64) ([]*department.Budget, error) {
	if err := f.call("DepartmentBudget"); err != nil {
		return nil, err
	}
	d := f.findDepartment(id)
	if d == nil {
		return []*department.Budget{}, nil
	}
	total := decimal.Zero
	holders := 0
	for _, e := range f.employees {
		if r := f.findRole(e.RoleID); r != nil && r.DepartmentID == id {
			total = total.Add(r.Salary)
			holders++
		}
	}
	if holders == 0 {
		return []*department.Budget{}, nil
	}
	return []*department.Budget{{Department: d.Name, Total: total}}, nil
}

// role.UseCase

func (f *fakeDirectory) ListRoles(context.Context) ([]*role.Role, error) {
	if err := f.call("ListRoles"); err != nil {
		return nil, err
	}
	return append([]*role.Role(nil), f.roles...), nil
}

func (f *fakeDirectory) ListRolesWithDepartment(context.Context) ([]*role.Listing, error) {
	if err := f.call("ListRolesWithDepartment"); err != nil {
		return nil, err
	}
	out := make([]*role.Listing, 0, len(f.roles))
	for _, r := range f.roles {
		l := &role.Listing{ID: r.ID, Title: r.Title, Salary: r.Salary}
		if d := f.findDepartment(r.DepartmentID); d != nil {
			name := d.Name
			l.DepartmentName = &name
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeDirectory) CreateRole(_ context.Context, in role.CreateRoleInput) (*role.Role, error) {
	if err := f.call("CreateRole"); err != nil {
		return nil, err
	}
	salary, err := role.ParseSalary(in.Salary)
	if err != nil {
		return nil, err
	}
	if f.findDepartment(in.DepartmentID) == nil {
		return nil, role.ErrDepartmentNotFound
	}
	return f.seedRole(in.Title, salary.String(), in.DepartmentID), nil
}

func (f *fakeDirectory) DeleteRole(_ context.Context, id int64) (*role.Role, error) {
	if err := f.call("DeleteRole"); err != nil {
		return nil, err
	}
	for i, r := range f.roles {
		if r.ID == id {
			f.roles = append(f.roles[:i], f.roles[i+1:]...)
			return r, nil
		}
	}
	return nil, role.ErrRoleNotFound
}

// employee.UseCase

func (f *fakeDirectory) ListEmployees(context.Context) ([]*employee.Employee, error) {
	if err := f.call("ListEmployees"); err != nil {
		return nil, err
	}
	return append([]*employee.Employee(nil), f.employees...), nil
}

func (f *fakeDirectory) ListEmployeeDetails(context.Context) ([]*employee.Detail, error) {
	if err := f.call("ListEmployeeDetails"); err != nil {
		return nil, err
	}
	out := make([]*employee.Detail, 0, len(f.employees))
	for _, e := range f.employees {
		d := &employee.Detail{ID: e.ID, FirstName: e.FirstName, LastName: e.LastName}
		if r := f.findRole(e.RoleID); r != nil {
			title := r.Title
			d.Title = &title
			d.Salary = decimal.NewNullDecimal(r.Salary)
			if dep := f.findDepartment(r.DepartmentID); dep != nil {
				name := dep.Name
				d.Department = &name
			}
		}
		if e.ManagerID != nil {
			if m := f.findEmployee(*e.ManagerID); m != nil {
				name := m.FullName()
				d.Manager = &name
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDirectory) ListByManager(context.Context) ([]*employee.ManagerEntry, error) {
	if err := f.call("ListByManager"); err != nil {
		return nil, err
	}
	out := make([]*employee.ManagerEntry, 0, len(f.employees))
	for _, e := range f.employees {
		entry := &employee.ManagerEntry{Employee: e.FullName()}
		if e.ManagerID != nil {
			if m := f.findEmployee(*e.ManagerID); m != nil {
				name := m.FullName()
				entry.Manager = &name
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeDirectory) ListByDepartment(context.Context) ([]*employee.DepartmentEntry, error) {
	if err := f.call("ListByDepartment"); err != nil {
		return nil, err
	}
	out := make([]*employee.DepartmentEntry, 0, len(f.employees))
	for _, e := range f.employees {
		r := f.findRole(e.RoleID)
		if r == nil {
			continue
		}
		d := f.findDepartment(r.DepartmentID)
		if d == nil {
			continue
		}
		out = append(out, &employee.DepartmentEntry{Department: d.Name, Employee: e.FullName()})
	}
	return out, nil
}

func (f *fakeDirectory) CreateEmployee(_ context.Context, in employee.CreateEmployeeInput) (*employee.Employee, error) {
	if err := f.call("CreateEmployee"); err != nil {
		return nil, err
	}
	return f.seedEmployee(in.FirstName, in.LastName, in.RoleID, in.ManagerID), nil
}

func (f *fakeDirectory) UpdateEmployeeRole(_ context.Context, in employee.UpdateRoleInput) (*employee.Employee, error) {
	if err := f.call("UpdateEmployeeRole"); err != nil {
		return nil, err
	}
	e := f.findEmployee(in.ID)
	if e == nil {
		return nil, employee.ErrEmployeeNotFound
	}
	e.RoleID = in.RoleID
	return e, nil
}

func (f *fakeDirectory) UpdateEmployeeManager(_ context.Context, in employee.UpdateManagerInput) (*employee.Employee, error) {
	if err := f.call("UpdateEmployeeManager"); err != nil {
		return nil, err
	}
	e := f.findEmployee(in.ID)
	if e == nil {
		return nil, employee.ErrEmployeeNotFound
	}
	e.ManagerID = in.ManagerID
	return e, nil
}

func (f *fakeDirectory) DeleteEmployee(_ context.Context, id int64) (*employee.Employee, error) {
	if err := f.call("DeleteEmployee"); err != nil {
		return nil, err
	}
	for i, e := range f.employees {
		if e.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return e, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}
