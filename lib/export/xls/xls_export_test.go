package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hr-portal-backend/models"
	dbmodels "hr-portal-backend/models/db"
)

type fakeEmployeeStore struct {
	recs []dbmodels.Employee
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeEmployeeStore) Update(employeeID string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeEmployeeStore) Delete(employeeID string) error {
	return nil
}

func (f *fakeEmployeeStore) GetByID(employeeID string) (*dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) GetByAccountID(accountID string) (*dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) GetList() ([]dbmodels.Employee, error) {
	return f.recs, nil
}

func (f *fakeEmployeeStore) CountByDepartment(departmentID string) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeStore) GetLastCode() (string, error) {
	return "", nil
}

func TestExportEmployeeList(t *testing.T) {
	store := &fakeEmployeeStore{
		recs: []dbmodels.Employee{
			{
				EmployeeCode: "EMP001",
				Position:     "Инженер",
				Status:       models.EmployeeWorkingStatus,
				HireDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Account: &dbmodels.Account{
					FirstName: "Иван",
					LastName:  "Петров",
					Email:     "ivan@example.com",
				},
				Department: &dbmodels.Department{Name: "Разработка"},
			},
			{
				EmployeeCode: "EMP002",
				Position:     "Аналитик",
				Status:       models.EmployeeOnVacationStatus,
				Account: &dbmodels.Account{
					FirstName: "Анна",
					LastName:  "Смирнова",
					Email:     "anna@example.com",
				},
			},
		},
	}
	handler := NewHandler(store)

	buf, err := handler.ExportEmployeeList()
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Сотрудники")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, employeeHeaders, rows[0])
	require.Equal(t, "EMP001", rows[1][0])
	require.Equal(t, "Иван Петров", rows[1][1])
	require.Equal(t, "Разработка", rows[1][4])
	require.Equal(t, "01.03.2024", rows[1][6])
	require.Equal(t, "EMP002", rows[2][0])
	require.Equal(t, "В отпуске", rows[2][5])
}
