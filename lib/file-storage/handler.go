package filestorage

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/lib/apperr"
	employeestore "hr-portal-backend/lib/employee/store"
	docstore "hr-portal-backend/lib/file-storage/store"
	employeeapimodels "hr-portal-backend/models/api/employee"
	dbmodels "hr-portal-backend/models/db"
	s3client "hr-portal-backend/s3"
)

const maxDocSize = 20 << 20 // 20 МБ

type Provider interface {
	UploadDoc(ctx context.Context, employeeID, fileName, contentType string, body []byte) (string, error)
	GetDoc(ctx context.Context, employeeID, docID string) (employeeapimodels.DocView, []byte, error)
	ListDocs(employeeID string) ([]employeeapimodels.DocView, error)
	DeleteDoc(ctx context.Context, employeeID, docID string) error
}

func NewHandler(docStore docstore.Provider, employeeStore employeestore.Provider, storage s3client.Provider) Provider {
	return &impl{
		docStore:      docStore,
		employeeStore: employeeStore,
		storage:       storage,
	}
}

type impl struct {
	docStore      docstore.Provider
	employeeStore employeestore.Provider
	storage       s3client.Provider
}

func (i impl) UploadDoc(ctx context.Context, employeeID, fileName, contentType string, body []byte) (string, error) {
	logger := log.WithField("employee_id", employeeID)
	if len(body) == 0 {
		return "", apperr.NewValidationError(map[string]string{"file": "пустой файл"})
	}
	if len(body) > maxDocSize {
		return "", apperr.NewValidationError(map[string]string{"file": "размер файла превышает 20 МБ"})
	}
	if err := i.checkEmployee(employeeID); err != nil {
		return "", err
	}
	objectKey := buildObjectKey(employeeID, fileName)
	err := i.storage.Put(ctx, objectKey, body, contentType)
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки документа в s3")
		return "", err
	}
	id, err := i.docStore.Create(dbmodels.EmployeeDoc{
		EmployeeID:  employeeID,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        int64(len(body)),
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения метаданных документа")
		return "", err
	}
	return id, nil
}

func (i impl) GetDoc(ctx context.Context, employeeID, docID string) (employeeapimodels.DocView, []byte, error) {
	rec, err := i.getExisting(employeeID, docID)
	if err != nil {
		return employeeapimodels.DocView{}, nil, err
	}
	body, err := i.storage.Get(ctx, rec.ObjectKey)
	if err != nil {
		log.
			WithField("doc_id", docID).
			WithError(err).
			Error("ошибка чтения документа из s3")
		return employeeapimodels.DocView{}, nil, err
	}
	return rec.ToModel(), body, nil
}

func (i impl) ListDocs(employeeID string) (list []employeeapimodels.DocView, err error) {
	if err := i.checkEmployee(employeeID); err != nil {
		return nil, err
	}
	recs, err := i.docStore.ListByEmployee(employeeID)
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка получения списка документов")
		return nil, err
	}
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// DeleteDoc - сначала удаляются метаданные, затем объект в s3,
// осиротевший объект хуже битой ссылки
func (i impl) DeleteDoc(ctx context.Context, employeeID, docID string) error {
	rec, err := i.getExisting(employeeID, docID)
	if err != nil {
		return err
	}
	err = i.docStore.Delete(docID)
	if err != nil {
		return err
	}
	err = i.storage.Remove(ctx, rec.ObjectKey)
	if err != nil {
		log.
			WithField("doc_id", docID).
			WithError(err).
			Error("ошибка удаления документа из s3")
	}
	return nil
}

func (i impl) checkEmployee(employeeID string) error {
	employee, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperr.ErrNotFound
	}
	return nil
}

func (i impl) getExisting(employeeID, docID string) (*dbmodels.EmployeeDoc, error) {
	rec, err := i.docStore.GetByID(docID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.EmployeeID != employeeID {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}

func buildObjectKey(employeeID, fileName string) string {
	return fmt.Sprintf("%s/%s%s", employeeID, uuid.NewString(), path.Ext(fileName))
}
