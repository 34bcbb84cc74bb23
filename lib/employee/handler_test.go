package employeehandler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hr-portal-backend/lib/apperr"
	"hr-portal-backend/models"
	employeeapimodels "hr-portal-backend/models/api/employee"
	dbmodels "hr-portal-backend/models/db"
)

type fakeAccountStore struct {
	recs map[string]*dbmodels.Account
}

func (f *fakeAccountStore) Create(rec dbmodels.Account) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAccountStore) Update(accountID string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeAccountStore) Delete(accountID string) error {
	delete(f.recs, accountID)
	return nil
}

func (f *fakeAccountStore) GetByID(accountID string) (*dbmodels.Account, error) {
	return f.recs[accountID], nil
}

func (f *fakeAccountStore) FindByEmail(email string) (*dbmodels.Account, error) {
	for _, rec := range f.recs {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) FindByVerificationToken(token string) (*dbmodels.Account, error) {
	return nil, nil
}

func (f *fakeAccountStore) FindByResetToken(token string) (*dbmodels.Account, error) {
	return nil, nil
}

func (f *fakeAccountStore) ExistByEmail(email string) (bool, error) {
	rec, _ := f.FindByEmail(email)
	return rec != nil, nil
}

func (f *fakeAccountStore) GetList(page, limit int) ([]dbmodels.Account, int64, error) {
	return nil, 0, nil
}

func (f *fakeAccountStore) Count() (int64, error) {
	return int64(len(f.recs)), nil
}

type fakeDepartmentStore struct {
	recs map[string]*dbmodels.Department
}

func (f *fakeDepartmentStore) Create(rec dbmodels.Department) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeDepartmentStore) Update(departmentID string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeDepartmentStore) Delete(departmentID string) error {
	delete(f.recs, departmentID)
	return nil
}

func (f *fakeDepartmentStore) GetByID(departmentID string) (*dbmodels.Department, error) {
	return f.recs[departmentID], nil
}

func (f *fakeDepartmentStore) GetList() (list []dbmodels.Department, err error) {
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeDepartmentStore) ExistByName(name string) (bool, error) {
	for _, rec := range f.recs {
		if rec.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeStore struct {
	recs map[string]*dbmodels.Employee
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeEmployeeStore) Update(employeeID string, updMap map[string]interface{}) error {
	rec, ok := f.recs[employeeID]
	if !ok {
		return nil
	}
	if position, ok := updMap["position"].(string); ok {
		rec.Position = position
	}
	if status, ok := updMap["status"].(string); ok {
		rec.Status = models.EmployeeStatus(status)
	}
	if departmentID, ok := updMap["department_id"].(string); ok {
		rec.DepartmentID = &departmentID
	}
	return nil
}

func (f *fakeEmployeeStore) Delete(employeeID string) error {
	delete(f.recs, employeeID)
	return nil
}

func (f *fakeEmployeeStore) GetByID(employeeID string) (*dbmodels.Employee, error) {
	return f.recs[employeeID], nil
}

func (f *fakeEmployeeStore) GetByAccountID(accountID string) (*dbmodels.Employee, error) {
	for _, rec := range f.recs {
		if rec.AccountID == accountID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeStore) GetList() (list []dbmodels.Employee, err error) {
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeEmployeeStore) CountByDepartment(departmentID string) (count int64, err error) {
	for _, rec := range f.recs {
		if rec.DepartmentID != nil && *rec.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEmployeeStore) GetLastCode() (code string, err error) {
	// как и в БД: сравнение сначала по длине, затем лексикографически
	for _, rec := range f.recs {
		if len(rec.EmployeeCode) > len(code) ||
			(len(rec.EmployeeCode) == len(code) && rec.EmployeeCode > code) {
			code = rec.EmployeeCode
		}
	}
	return code, nil
}

type fakeWorkflowStore struct {
	recs []dbmodels.Workflow
}

func (f *fakeWorkflowStore) Create(rec dbmodels.Workflow) (string, error) {
	rec.ID = uuid.NewString()
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeWorkflowStore) Update(workflowID string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeWorkflowStore) GetByID(workflowID string) (*dbmodels.Workflow, error) {
	for _, rec := range f.recs {
		if rec.ID == workflowID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkflowStore) ListByEmployee(employeeID string) (list []dbmodels.Workflow, err error) {
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type testEnv struct {
	handler   Provider
	accounts  *fakeAccountStore
	depts     *fakeDepartmentStore
	employees *fakeEmployeeStore
	workflows *fakeWorkflowStore
}

func newTestEnv() *testEnv {
	accounts := &fakeAccountStore{recs: map[string]*dbmodels.Account{}}
	depts := &fakeDepartmentStore{recs: map[string]*dbmodels.Department{}}
	employees := &fakeEmployeeStore{recs: map[string]*dbmodels.Employee{}}
	workflows := &fakeWorkflowStore{}
	return &testEnv{
		handler:   NewHandler(employees, accounts, depts, workflows),
		accounts:  accounts,
		depts:     depts,
		employees: employees,
		workflows: workflows,
	}
}

func (e *testEnv) addAccount(email string) string {
	id, _ := e.accounts.Create(dbmodels.Account{
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     email,
		Role:      models.AccountRoleEmployee,
	})
	return id
}

func TestCreateEmployee(t *testing.T) {
	env := newTestEnv()
	accountID := env.addAccount("ivan@example.com")
	deptID, err := env.depts.Create(dbmodels.Department{Name: "Разработка"})
	require.NoError(t, err)

	t.Run("успешное создание с табельным номером и записью о приеме", func(t *testing.T) {
		id, err := env.handler.Create(employeeapimodels.CreateEmployee{
			AccountID:    accountID,
			DepartmentID: deptID,
			Position:     "Инженер",
			HireDate:     time.Now(),
		})
		require.NoError(t, err)

		rec := env.employees.recs[id]
		require.NotNil(t, rec)
		require.Equal(t, "EMP001", rec.EmployeeCode)
		require.Equal(t, models.EmployeeWorkingStatus, rec.Status)
		require.NotNil(t, rec.DepartmentID)
		require.Equal(t, deptID, *rec.DepartmentID)

		journal, err := env.workflows.ListByEmployee(id)
		require.NoError(t, err)
		require.Len(t, journal, 1)
		require.Equal(t, models.WorkflowTypeOnboarding, journal[0].Type)
	})

	t.Run("повторная кадровая запись на тот же аккаунт", func(t *testing.T) {
		_, err := env.handler.Create(employeeapimodels.CreateEmployee{
			AccountID: accountID,
			Position:  "Инженер",
		})
		require.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("несуществующий аккаунт", func(t *testing.T) {
		_, err := env.handler.Create(employeeapimodels.CreateEmployee{
			AccountID: uuid.NewString(),
			Position:  "Инженер",
		})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("несуществующее подразделение", func(t *testing.T) {
		otherAccount := env.addAccount("petr@example.com")
		_, err := env.handler.Create(employeeapimodels.CreateEmployee{
			AccountID:    otherAccount,
			DepartmentID: uuid.NewString(),
			Position:     "Инженер",
		})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("табельные номера идут по порядку", func(t *testing.T) {
		otherAccount := env.addAccount("anna@example.com")
		id, err := env.handler.Create(employeeapimodels.CreateEmployee{
			AccountID: otherAccount,
			Position:  "Аналитик",
		})
		require.NoError(t, err)
		require.Equal(t, "EMP002", env.employees.recs[id].EmployeeCode)
	})

	t.Run("переход через четырехзначный номер", func(t *testing.T) {
		for _, code := range []string{"EMP999", "EMP1000"} {
			rec := dbmodels.Employee{
				EmployeeCode: code,
				Position:     "Инженер",
				Status:       models.EmployeeWorkingStatus,
			}
			rec.ID = uuid.NewString()
			env.employees.recs[rec.ID] = &rec
		}
		otherAccount := env.addAccount("oleg@example.com")
		id, err := env.handler.Create(employeeapimodels.CreateEmployee{
			AccountID: otherAccount,
			Position:  "Инженер",
		})
		require.NoError(t, err)
		require.Equal(t, "EMP1001", env.employees.recs[id].EmployeeCode)
	})
}

func TestUpdateEmployeeStatus(t *testing.T) {
	env := newTestEnv()
	accountID := env.addAccount("ivan@example.com")
	id, err := env.handler.Create(employeeapimodels.CreateEmployee{
		AccountID: accountID,
		Position:  "Инженер",
	})
	require.NoError(t, err)

	t.Run("смена статуса пишется в журнал", func(t *testing.T) {
		err := env.handler.Update(id, employeeapimodels.UpdateEmployee{
			Position: "Инженер",
			Status:   string(models.EmployeeOnVacationStatus),
		})
		require.NoError(t, err)
		require.Equal(t, models.EmployeeOnVacationStatus, env.employees.recs[id].Status)

		journal, err := env.workflows.ListByEmployee(id)
		require.NoError(t, err)
		require.Len(t, journal, 2)
		require.Equal(t, models.WorkflowTypeStatusChange, journal[1].Type)
	})

	t.Run("без смены статуса журнал не растет", func(t *testing.T) {
		err := env.handler.Update(id, employeeapimodels.UpdateEmployee{
			Position: "Старший инженер",
			Status:   string(models.EmployeeOnVacationStatus),
		})
		require.NoError(t, err)

		journal, err := env.workflows.ListByEmployee(id)
		require.NoError(t, err)
		require.Len(t, journal, 2)
	})

	t.Run("увольнение фиксируется отдельным типом", func(t *testing.T) {
		err := env.handler.Update(id, employeeapimodels.UpdateEmployee{
			Position: "Старший инженер",
			Status:   string(models.EmployeeDismissedStatus),
		})
		require.NoError(t, err)

		journal, err := env.workflows.ListByEmployee(id)
		require.NoError(t, err)
		require.Len(t, journal, 3)
		require.Equal(t, models.WorkflowTypeOffboarding, journal[2].Type)
	})

	t.Run("несуществующий сотрудник", func(t *testing.T) {
		err := env.handler.Update(uuid.NewString(), employeeapimodels.UpdateEmployee{
			Position: "Инженер",
			Status:   string(models.EmployeeWorkingStatus),
		})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestTransferEmployee(t *testing.T) {
	env := newTestEnv()
	accountID := env.addAccount("ivan@example.com")
	firstDept, err := env.depts.Create(dbmodels.Department{Name: "Разработка"})
	require.NoError(t, err)
	secondDept, err := env.depts.Create(dbmodels.Department{Name: "Аналитика"})
	require.NoError(t, err)
	id, err := env.handler.Create(employeeapimodels.CreateEmployee{
		AccountID:    accountID,
		DepartmentID: firstDept,
		Position:     "Инженер",
	})
	require.NoError(t, err)

	t.Run("перевод меняет подразделение и пишется в журнал", func(t *testing.T) {
		err := env.handler.Transfer(id, employeeapimodels.TransferEmployee{DepartmentID: secondDept})
		require.NoError(t, err)
		require.Equal(t, secondDept, *env.employees.recs[id].DepartmentID)

		journal, err := env.workflows.ListByEmployee(id)
		require.NoError(t, err)
		require.Len(t, journal, 2)
		require.Equal(t, models.WorkflowTypeDepartmentTransfer, journal[1].Type)
	})

	t.Run("перевод в то же подразделение", func(t *testing.T) {
		err := env.handler.Transfer(id, employeeapimodels.TransferEmployee{DepartmentID: secondDept})
		require.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("перевод в несуществующее подразделение", func(t *testing.T) {
		err := env.handler.Transfer(id, employeeapimodels.TransferEmployee{DepartmentID: uuid.NewString()})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestDeleteEmployee(t *testing.T) {
	env := newTestEnv()
	accountID := env.addAccount("ivan@example.com")
	id, err := env.handler.Create(employeeapimodels.CreateEmployee{
		AccountID: accountID,
		Position:  "Инженер",
	})
	require.NoError(t, err)

	require.NoError(t, env.handler.Delete(id))
	require.ErrorIs(t, env.handler.Delete(id), apperr.ErrNotFound)
}
