package workflowhandler

import (
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/lib/apperr"
	employeestore "hr-portal-backend/lib/employee/store"
	workflowstore "hr-portal-backend/lib/workflow/store"
	"hr-portal-backend/models"
	workflowapimodels "hr-portal-backend/models/api/workflow"
	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	GetByID(workflowID string) (workflowapimodels.WorkflowView, error)
	ListByEmployee(employeeID string) ([]workflowapimodels.WorkflowView, error)
	Create(request workflowapimodels.WorkflowData) (string, error)
	SetStatus(workflowID string, request workflowapimodels.StatusUpdate) error
}

func NewHandler(workflowStore workflowstore.Provider, employeeStore employeestore.Provider) Provider {
	return &impl{
		workflowStore: workflowStore,
		employeeStore: employeeStore,
	}
}

type impl struct {
	workflowStore workflowstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) GetByID(workflowID string) (workflowapimodels.WorkflowView, error) {
	rec, err := i.getExisting(workflowID)
	if err != nil {
		return workflowapimodels.WorkflowView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) ListByEmployee(employeeID string) (list []workflowapimodels.WorkflowView, err error) {
	employee, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperr.ErrNotFound
	}
	recs, err := i.workflowStore.ListByEmployee(employeeID)
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка получения кадровых действий сотрудника")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Create(request workflowapimodels.WorkflowData) (string, error) {
	employee, err := i.employeeStore.GetByID(request.EmployeeID)
	if err != nil {
		return "", err
	}
	if employee == nil {
		return "", apperr.ErrNotFound
	}
	id, err := i.workflowStore.Create(dbmodels.Workflow{
		EmployeeID: request.EmployeeID,
		Type:       models.WorkflowType(request.Type),
		Details:    request.Details,
		Status:     models.ReviewStatusPending,
	})
	if err != nil {
		log.
			WithField("employee_id", request.EmployeeID).
			WithError(err).
			Error("ошибка создания кадрового действия")
		return "", err
	}
	return id, nil
}

func (i impl) SetStatus(workflowID string, request workflowapimodels.StatusUpdate) error {
	rec, err := i.getExisting(workflowID)
	if err != nil {
		return err
	}
	if rec.Status != models.ReviewStatusPending {
		// решение по кадровому действию уже принято
		return apperr.ErrConflict
	}
	err = i.workflowStore.Update(workflowID, map[string]interface{}{
		"status": request.Status,
	})
	if err != nil {
		log.
			WithField("workflow_id", workflowID).
			WithError(err).
			Error("ошибка смены статуса кадрового действия")
		return err
	}
	return nil
}

func (i impl) getExisting(workflowID string) (*dbmodels.Workflow, error) {
	rec, err := i.workflowStore.GetByID(workflowID)
	if err != nil {
		log.
			WithField("workflow_id", workflowID).
			WithError(err).
			Error("ошибка поиска кадрового действия")
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}
