package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	Update(employeeID string, updMap map[string]interface{}) error
	// Delete удаляет кадровую запись, ее workflow, заявки с позициями
	// и метаданные документов каскадом на уровне БД
	Delete(employeeID string) error
	GetByID(employeeID string) (*dbmodels.Employee, error)
	GetByAccountID(accountID string) (*dbmodels.Employee, error)
	GetList() ([]dbmodels.Employee, error)
	CountByDepartment(departmentID string) (int64, error)
	GetLastCode() (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(employeeID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(employeeID string) error {
	return i.db.
		Where("id = ?", employeeID).
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) GetByID(employeeID string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByAccountID(accountID string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("account_id = ?", accountID).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetList() (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Order("employee_code").
		Preload("Account").
		Preload("Department").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) CountByDepartment(departmentID string) (count int64, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) GetLastCode() (string, error) {
	var rec dbmodels.Employee
	// табельные номера сравниваются как строки, поэтому сначала по длине:
	// EMP1000 должен идти после EMP999
	err := i.db.Model(dbmodels.Employee{}).
		Order("length(employee_code) DESC, employee_code DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.EmployeeCode, nil
}
