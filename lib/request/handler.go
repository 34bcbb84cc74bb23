package requesthandler

import (
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/lib/apperr"
	employeestore "hr-portal-backend/lib/employee/store"
	requeststore "hr-portal-backend/lib/request/store"
	"hr-portal-backend/middleware"
	"hr-portal-backend/models"
	requestapimodels "hr-portal-backend/models/api/request"
	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	GetList(page, limit int) ([]requestapimodels.RequestView, int64, error)
	ListMine(user middleware.CurrentUser) ([]requestapimodels.RequestView, error)
	GetByID(requestID string, user middleware.CurrentUser) (requestapimodels.RequestView, error)
	Create(request requestapimodels.RequestData, user middleware.CurrentUser) (string, error)
	Update(requestID string, request requestapimodels.RequestData, user middleware.CurrentUser) error
	SetStatus(requestID string, request requestapimodels.StatusUpdate, user middleware.CurrentUser) error
	Delete(requestID string, user middleware.CurrentUser) error
}

func NewHandler(requestStore requeststore.Provider, employeeStore employeestore.Provider) Provider {
	return &impl{
		requestStore:  requestStore,
		employeeStore: employeeStore,
	}
}

type impl struct {
	requestStore  requeststore.Provider
	employeeStore employeestore.Provider
}

func (i impl) GetList(page, limit int) (list []requestapimodels.RequestView, rowCount int64, err error) {
	recs, rowCount, err := i.requestStore.GetList(page, limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок")
		return nil, 0, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) ListMine(user middleware.CurrentUser) (list []requestapimodels.RequestView, err error) {
	employee, err := i.ownEmployee(user)
	if err != nil {
		return nil, err
	}
	recs, err := i.requestStore.ListByEmployee(employee.ID)
	if err != nil {
		log.
			WithField("employee_id", employee.ID).
			WithError(err).
			Error("ошибка получения заявок сотрудника")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(requestID string, user middleware.CurrentUser) (requestapimodels.RequestView, error) {
	rec, err := i.getExisting(requestID)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	if err := i.checkAccess(rec, user); err != nil {
		return requestapimodels.RequestView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) Create(request requestapimodels.RequestData, user middleware.CurrentUser) (string, error) {
	employee, err := i.ownEmployee(user)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Request{
		EmployeeID: employee.ID,
		Type:       models.RequestType(request.Type),
		Status:     models.ReviewStatusPending,
		Items:      toItems(request.Items),
	}
	id, err := i.requestStore.Create(rec)
	if err != nil {
		log.
			WithField("employee_id", employee.ID).
			WithError(err).
			Error("ошибка создания заявки")
		return "", err
	}
	return id, nil
}

// Update - состав заявки можно менять только пока она на рассмотрении
func (i impl) Update(requestID string, request requestapimodels.RequestData, user middleware.CurrentUser) error {
	rec, err := i.getExisting(requestID)
	if err != nil {
		return err
	}
	if err := i.checkAccess(rec, user); err != nil {
		return err
	}
	if rec.Status != models.ReviewStatusPending {
		return apperr.ErrConflict
	}
	err = i.requestStore.Update(requestID, map[string]interface{}{
		"type": request.Type,
	})
	if err != nil {
		return err
	}
	err = i.requestStore.ReplaceItems(requestID, toItems(request.Items))
	if err != nil {
		log.
			WithField("request_id", requestID).
			WithError(err).
			Error("ошибка обновления позиций заявки")
		return err
	}
	return nil
}

// SetStatus - решение согласующего, фиксирует кто принял решение
func (i impl) SetStatus(requestID string, request requestapimodels.StatusUpdate, user middleware.CurrentUser) error {
	rec, err := i.getExisting(requestID)
	if err != nil {
		return err
	}
	if rec.Status != models.ReviewStatusPending {
		return apperr.ErrConflict
	}
	err = i.requestStore.Update(requestID, map[string]interface{}{
		"status":      request.Status,
		"approver_id": user.ID,
	})
	if err != nil {
		log.
			WithField("request_id", requestID).
			WithError(err).
			Error("ошибка смены статуса заявки")
		return err
	}
	return nil
}

func (i impl) Delete(requestID string, user middleware.CurrentUser) error {
	rec, err := i.getExisting(requestID)
	if err != nil {
		return err
	}
	if err := i.checkAccess(rec, user); err != nil {
		return err
	}
	if !user.Role.IsElevated() && rec.Status != models.ReviewStatusPending {
		// сотрудник не может удалить уже рассмотренную заявку
		return apperr.ErrConflict
	}
	err = i.requestStore.Delete(requestID)
	if err != nil {
		log.
			WithField("request_id", requestID).
			WithError(err).
			Error("ошибка удаления заявки")
		return err
	}
	return nil
}

// ownEmployee - кадровая запись текущего пользователя
func (i impl) ownEmployee(user middleware.CurrentUser) (*dbmodels.Employee, error) {
	employee, err := i.employeeStore.GetByAccountID(user.ID)
	if err != nil {
		log.
			WithField("account_id", user.ID).
			WithError(err).
			Error("ошибка поиска кадровой записи пользователя")
		return nil, err
	}
	if employee == nil {
		return nil, apperr.ErrNotFound
	}
	return employee, nil
}

// checkAccess - заявка доступна ее владельцу и администраторам
func (i impl) checkAccess(rec *dbmodels.Request, user middleware.CurrentUser) error {
	if user.Role.IsElevated() {
		return nil
	}
	employee, err := i.employeeStore.GetByAccountID(user.ID)
	if err != nil {
		return err
	}
	if employee == nil || employee.ID != rec.EmployeeID {
		return apperr.ErrForbidden
	}
	return nil
}

func (i impl) getExisting(requestID string) (*dbmodels.Request, error) {
	rec, err := i.requestStore.GetByID(requestID)
	if err != nil {
		log.
			WithField("request_id", requestID).
			WithError(err).
			Error("ошибка поиска заявки")
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}

func toItems(items []requestapimodels.RequestItemData) (recs []dbmodels.RequestItem) {
	for _, item := range items {
		recs = append(recs, dbmodels.RequestItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	return recs
}
