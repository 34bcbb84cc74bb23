package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	employeestore "hr-portal-backend/lib/employee/store"
	dbmodels "hr-portal-backend/models/db"
)

type Provider interface {
	ExportEmployeeList() (*bytes.Buffer, error)
}

func NewHandler(employeeStore employeestore.Provider) Provider {
	return &impl{
		employeeStore: employeeStore,
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

var employeeHeaders = []string{"Табельный номер", "ФИО", "Почта", "Должность", "Подразделение", "Статус", "Дата приема"}

func (i impl) ExportEmployeeList() (*bytes.Buffer, error) {
	list, err := i.employeeStore.GetList()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сотрудников для выгрузки")
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err = writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeEmployeeData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Сотрудники")
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []dbmodels.Employee, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(employeeHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Табельный номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.EmployeeCode); err != nil {
			return row, err
		}

		// "ФИО"
		col++
		if item.Account != nil {
			if err := writeColumn(f, sheet, col, row, item.Account.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Почта"
		col++
		if item.Account != nil {
			if err := writeColumn(f, sheet, col, row, item.Account.Email); err != nil {
				return row, err
			}
		}

		// "Должность"
		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		// "Подразделение"
		col++
		if item.Department != nil {
			if err := writeColumn(f, sheet, col, row, item.Department.Name); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Дата приема"
		col++
		if !item.HireDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.HireDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
