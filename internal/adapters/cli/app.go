package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ogurasousui/employee-tracker/internal/core/department"
	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
	"go.uber.org/zap"
)

// メニュー項目。表示順はこの並びで固定です。
const (
	ActionViewDepartments       = "View All Departments"
	ActionViewRoles             = "View All Roles"
	ActionViewEmployees         = "View All Employees"
	ActionViewByManager         = "View Employees by Manager"
	ActionViewByDepartment      = "View Employees by Department"
	ActionViewDepartmentBudget  = "View Department Budget"
	ActionAddDepartment         = "Add Department"
	ActionAddRole               = "Add Role"
	ActionAddEmployee           = "Add Employee"
	ActionUpdateEmployeeRole    = "Update Employee Role"
	ActionUpdateEmployeeManager = "Update Employee Manager"
	ActionDeleteDepartment      = "Delete Department"
	ActionDeleteRole            = "Delete Role"
	ActionDeleteEmployee        = "Delete Employee"
	ActionExit                  = "Exit"
	menuMessage                 = "What would you like to do?"
)

var errNoChoices = errors.New("cli: no choices available")

// Deps は App の依存をまとめます。
type Deps struct {
	Departments department.UseCase
	Roles       role.UseCase
	Employees   employee.UseCase
	Prompter    Prompter
	Renderer    Renderer
	Out         io.Writer
	Logger      *zap.Logger
}

type action struct {
	label string
	run   func(ctx context.Context) error
}

// App はメニューループと各操作のハンドラを保持します。
type App struct {
	departments department.UseCase
	roles       role.UseCase
	employees   employee.UseCase
	prompt      Prompter
	render      Renderer
	out         io.Writer
	log         *zap.Logger
	actions     []action
}

// NewApp は App を生成します。Renderer を省略した場合は Out に表を出力します。
func NewApp(d Deps) *App {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.Renderer == nil {
		d.Renderer = NewTableRenderer(d.Out)
	}

	a := &App{
		departments: d.Departments,
		roles:       d.Roles,
		employees:   d.Employees,
		prompt:      d.Prompter,
		render:      d.Renderer,
		out:         d.Out,
		log:         d.Logger,
	}

	a.actions = []action{
		{ActionViewDepartments, a.viewDepartments},
		{ActionViewRoles, a.viewRoles},
		{ActionViewEmployees, a.viewEmployees},
		{ActionViewByManager, a.viewEmployeesByManager},
		{ActionViewByDepartment, a.viewEmployeesByDepartment},
		{ActionViewDepartmentBudget, a.viewDepartmentBudget},
		{ActionAddDepartment, a.addDepartment},
		{ActionAddRole, a.addRole},
		{ActionAddEmployee, a.addEmployee},
		{ActionUpdateEmployeeRole, a.updateEmployeeRole},
		{ActionUpdateEmployeeManager, a.updateEmployeeManager},
		{ActionDeleteDepartment, a.deleteDepartment},
		{ActionDeleteRole, a.deleteRole},
		{ActionDeleteEmployee, a.deleteEmployee},
		{ActionExit, nil},
	}

	return a
}

// MenuLabels はメニュー項目を表示順で返します。
func (a *App) MenuLabels() []string {
	labels := make([]string, len(a.actions))
	for i, act := range a.actions {
		labels[i] = act.label
	}
	return labels
}

// Run は Exit が選ばれるまでメニューを表示し、選択された操作を実行します。
// 操作の失敗はログに記録してメニューへ戻ります。
func (a *App) Run(ctx context.Context) error {
	labels := a.MenuLabels()

	for {
		if ctx.Err() != nil {
			return nil
		}

		idx, err := a.prompt.Select(menuMessage, labels)
		if err != nil {
			if isInterrupt(err) {
				return nil
			}
			return fmt.Errorf("cli: select action: %w", err)
		}

		if idx < 0 || idx >= len(a.actions) || a.actions[idx].run == nil {
			a.log.Debug("exit selected")
			return nil
		}

		a.dispatch(ctx, a.actions[idx])
	}
}

func (a *App) dispatch(ctx context.Context, act action) {
	log := a.log.With(zap.String("action", act.label))
	log.Debug("action started")

	err := act.run(ctx)
	switch {
	case err == nil:
		log.Debug("action completed")
	case isInterrupt(err):
		log.Info("action cancelled")
	default:
		log.Error("action failed", zap.String("reason", describeError(err)), zap.Error(err))
	}
}
