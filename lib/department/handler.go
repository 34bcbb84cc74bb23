package departmenthandler

import (
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/lib/apperr"
	departmentstore "hr-portal-backend/lib/department/store"
	employeestore "hr-portal-backend/lib/employee/store"
	departmentapimodels "hr-portal-backend/models/api/department"
	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	GetList() ([]departmentapimodels.DepartmentView, error)
	GetByID(departmentID string) (departmentapimodels.DepartmentView, error)
	Create(request departmentapimodels.DepartmentData) (string, error)
	Update(departmentID string, request departmentapimodels.DepartmentData) error
	Delete(departmentID string) error
}

func NewHandler(departmentStore departmentstore.Provider, employeeStore employeestore.Provider) Provider {
	return &impl{
		departmentStore: departmentStore,
		employeeStore:   employeeStore,
	}
}

type impl struct {
	departmentStore departmentstore.Provider
	employeeStore   employeestore.Provider
}

func (i impl) GetList() (list []departmentapimodels.DepartmentView, err error) {
	recs, err := i.departmentStore.GetList()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка отделов")
		return nil, err
	}
	for _, rec := range recs {
		count, err := i.employeeStore.CountByDepartment(rec.ID)
		if err != nil {
			return nil, err
		}
		list = append(list, rec.ToModel(count))
	}
	return list, nil
}

func (i impl) GetByID(departmentID string) (departmentapimodels.DepartmentView, error) {
	rec, err := i.getExisting(departmentID)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	count, err := i.employeeStore.CountByDepartment(departmentID)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	return rec.ToModel(count), nil
}

func (i impl) Create(request departmentapimodels.DepartmentData) (string, error) {
	logger := log.WithField("name", request.Name)
	exist, err := i.departmentStore.ExistByName(request.Name)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки уже существующего отдела")
		return "", err
	}
	if exist {
		return "", apperr.ErrConflict
	}
	id, err := i.departmentStore.Create(dbmodels.Department{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания отдела")
		return "", err
	}
	return id, nil
}

func (i impl) Update(departmentID string, request departmentapimodels.DepartmentData) error {
	rec, err := i.getExisting(departmentID)
	if err != nil {
		return err
	}
	if rec.Name != request.Name {
		exist, err := i.departmentStore.ExistByName(request.Name)
		if err != nil {
			return err
		}
		if exist {
			return apperr.ErrConflict
		}
	}
	err = i.departmentStore.Update(departmentID, map[string]interface{}{
		"name":        request.Name,
		"description": request.Description,
	})
	if err != nil {
		log.
			WithField("department_id", departmentID).
			WithError(err).
			Error("ошибка обновления отдела")
		return err
	}
	return nil
}

// Delete - сотрудники отдела не удаляются, БД зануляет их department_id
func (i impl) Delete(departmentID string) error {
	if _, err := i.getExisting(departmentID); err != nil {
		return err
	}
	err := i.departmentStore.Delete(departmentID)
	if err != nil {
		log.
			WithField("department_id", departmentID).
			WithError(err).
			Error("ошибка удаления отдела")
		return err
	}
	return nil
}

func (i impl) getExisting(departmentID string) (*dbmodels.Department, error) {
	rec, err := i.departmentStore.GetByID(departmentID)
	if err != nil {
		log.
			WithField("department_id", departmentID).
			WithError(err).
			Error("ошибка поиска отдела")
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}
