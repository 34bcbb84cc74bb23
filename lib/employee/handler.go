package employeehandler

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	accountstore "hr-portal-backend/lib/account/store"
	"hr-portal-backend/lib/apperr"
	departmentstore "hr-portal-backend/lib/department/store"
	employeestore "hr-portal-backend/lib/employee/store"
	workflowstore "hr-portal-backend/lib/workflow/store"
	"hr-portal-backend/models"
	employeeapimodels "hr-portal-backend/models/api/employee"
	dbmodels "hr-portal-backend/models/db"
)

const employeeCodePrefix = "EMP"

type Provider interface {
	GetList() ([]employeeapimodels.EmployeeView, error)
	GetByID(employeeID string) (employeeapimodels.EmployeeView, error)
	Create(request employeeapimodels.CreateEmployee) (string, error)
	Update(employeeID string, request employeeapimodels.UpdateEmployee) error
	Transfer(employeeID string, request employeeapimodels.TransferEmployee) error
	Delete(employeeID string) error
}

func NewHandler(
	employeeStore employeestore.Provider,
	accountStore accountstore.Provider,
	departmentStore departmentstore.Provider,
	workflowStore workflowstore.Provider,
) Provider {
	return &impl{
		employeeStore:   employeeStore,
		accountStore:    accountStore,
		departmentStore: departmentStore,
		workflowStore:   workflowStore,
	}
}

type impl struct {
	employeeStore   employeestore.Provider
	accountStore    accountstore.Provider
	departmentStore departmentstore.Provider
	workflowStore   workflowstore.Provider
}

func (i impl) GetList() (list []employeeapimodels.EmployeeView, err error) {
	recs, err := i.employeeStore.GetList()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(employeeID string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.getExisting(employeeID)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) Create(request employeeapimodels.CreateEmployee) (string, error) {
	logger := log.WithField("account_id", request.AccountID)
	account, err := i.accountStore.GetByID(request.AccountID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска аккаунта сотрудника")
		return "", err
	}
	if account == nil {
		return "", apperr.ErrNotFound
	}
	existing, err := i.employeeStore.GetByAccountID(request.AccountID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		// на аккаунт уже заведена кадровая запись
		return "", apperr.ErrConflict
	}
	var departmentID *string
	if request.DepartmentID != "" {
		department, err := i.departmentStore.GetByID(request.DepartmentID)
		if err != nil {
			return "", err
		}
		if department == nil {
			return "", apperr.ErrNotFound
		}
		departmentID = &request.DepartmentID
	}
	code, err := i.nextEmployeeCode()
	if err != nil {
		logger.WithError(err).Error("ошибка генерации табельного номера")
		return "", err
	}
	id, err := i.employeeStore.Create(dbmodels.Employee{
		AccountID:    request.AccountID,
		DepartmentID: departmentID,
		EmployeeCode: code,
		Position:     request.Position,
		Status:       models.EmployeeWorkingStatus,
		HireDate:     request.HireDate,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания кадровой записи")
		return "", err
	}
	i.recordWorkflow(id, models.WorkflowTypeOnboarding,
		fmt.Sprintf("Прием на должность «%s», табельный номер %s", request.Position, code))
	return id, nil
}

func (i impl) Update(employeeID string, request employeeapimodels.UpdateEmployee) error {
	rec, err := i.getExisting(employeeID)
	if err != nil {
		return err
	}
	newStatus := models.EmployeeStatus(request.Status)
	err = i.employeeStore.Update(employeeID, map[string]interface{}{
		"position": request.Position,
		"status":   string(newStatus),
	})
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка обновления кадровой записи")
		return err
	}
	if rec.Status != newStatus {
		workflowType := models.WorkflowTypeStatusChange
		if newStatus == models.EmployeeDismissedStatus {
			workflowType = models.WorkflowTypeOffboarding
		}
		i.recordWorkflow(employeeID, workflowType,
			fmt.Sprintf("Статус изменен: %s → %s", rec.Status.ToHuman(), newStatus.ToHuman()))
	}
	return nil
}

func (i impl) Transfer(employeeID string, request employeeapimodels.TransferEmployee) error {
	rec, err := i.getExisting(employeeID)
	if err != nil {
		return err
	}
	department, err := i.departmentStore.GetByID(request.DepartmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return apperr.ErrNotFound
	}
	if rec.DepartmentID != nil && *rec.DepartmentID == request.DepartmentID {
		// сотрудник уже в этом подразделении
		return apperr.ErrConflict
	}
	err = i.employeeStore.Update(employeeID, map[string]interface{}{
		"department_id": request.DepartmentID,
	})
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка перевода сотрудника")
		return err
	}
	from := "без подразделения"
	if rec.Department != nil {
		from = rec.Department.Name
	}
	i.recordWorkflow(employeeID, models.WorkflowTypeDepartmentTransfer,
		fmt.Sprintf("Перевод: %s → %s", from, department.Name))
	return nil
}

func (i impl) Delete(employeeID string) error {
	if _, err := i.getExisting(employeeID); err != nil {
		return err
	}
	err := i.employeeStore.Delete(employeeID)
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка удаления кадровой записи")
		return err
	}
	return nil
}

func (i impl) getExisting(employeeID string) (*dbmodels.Employee, error) {
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка поиска сотрудника")
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}

func (i impl) nextEmployeeCode() (string, error) {
	lastCode, err := i.employeeStore.GetLastCode()
	if err != nil {
		return "", err
	}
	next := 1
	if lastCode != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(lastCode, employeeCodePrefix))
		if err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", employeeCodePrefix, next), nil
}

// recordWorkflow - журнальная запись кадрового действия, ошибка не прерывает операцию
func (i impl) recordWorkflow(employeeID string, workflowType models.WorkflowType, details string) {
	_, err := i.workflowStore.Create(dbmodels.Workflow{
		EmployeeID: employeeID,
		Type:       workflowType,
		Details:    details,
		Status:     models.ReviewStatusApproved,
	})
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка записи кадрового действия")
	}
}
