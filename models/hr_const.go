package models

type EmployeeStatus string

const (
	EmployeeWorkingStatus    EmployeeStatus = "WORKING"
	EmployeeOnVacationStatus EmployeeStatus = "VACATION"
	EmployeeDismissedStatus  EmployeeStatus = "DISMISSED"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeWorkingStatus:    "Работает",
	EmployeeOnVacationStatus: "В отпуске",
	EmployeeDismissedStatus:  "Уволен",
}

func (r EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r EmployeeStatus) IsValid() bool {
	_, exist := employeeStatusHumanName[r]
	return exist
}

type WorkflowType string

const (
	WorkflowTypeOnboarding         WorkflowType = "ONBOARDING"
	WorkflowTypeDepartmentTransfer WorkflowType = "DEPARTMENT_TRANSFER"
	WorkflowTypeStatusChange       WorkflowType = "STATUS_CHANGE"
	WorkflowTypeOffboarding        WorkflowType = "OFFBOARDING"
)

var workflowTypeHumanName = map[WorkflowType]string{
	WorkflowTypeOnboarding:         "Прием на работу",
	WorkflowTypeDepartmentTransfer: "Перевод в другое подразделение",
	WorkflowTypeStatusChange:       "Смена статуса",
	WorkflowTypeOffboarding:        "Увольнение",
}

func (r WorkflowType) ToHuman() string {
	if human, exist := workflowTypeHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r WorkflowType) IsValid() bool {
	_, exist := workflowTypeHumanName[r]
	return exist
}

// ReviewStatus - статус согласования, общий для workflow и заявок
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

var reviewStatusHumanName = map[ReviewStatus]string{
	ReviewStatusPending:  "На рассмотрении",
	ReviewStatusApproved: "Согласовано",
	ReviewStatusRejected: "Отклонено",
}

func (r ReviewStatus) ToHuman() string {
	if human, exist := reviewStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r ReviewStatus) IsValid() bool {
	_, exist := reviewStatusHumanName[r]
	return exist
}

type RequestType string

const (
	RequestTypeEquipment RequestType = "EQUIPMENT"
	RequestTypeLeave     RequestType = "LEAVE"
	RequestTypeResources RequestType = "RESOURCES"
)

var requestTypeHumanName = map[RequestType]string{
	RequestTypeEquipment: "Оборудование",
	RequestTypeLeave:     "Отпуск",
	RequestTypeResources: "Материалы",
}

func (r RequestType) ToHuman() string {
	if human, exist := requestTypeHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r RequestType) IsValid() bool {
	_, exist := requestTypeHumanName[r]
	return exist
}
