package services

import (
	"canteen/entity"
	"canteen/repository"

	"gorm.io/gorm"
)

type BillingService struct {
	DB   *gorm.DB
	Repo *repository.TransactionRepository
}

func NewBillingService(db *gorm.DB, repo *repository.TransactionRepository) *BillingService {
	return &BillingService{DB: db, Repo: repo}
}

// Bill is the monthly statement for one employee. Month/year of 0 means
// the statement was built without a period filter.
type Bill struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	TotalAmount  float64 `json:"totalAmount"`

	ActiveCount    int `json:"activeCount"`
	InactiveCount  int `json:"inactiveCount"`
	GeneratedCount int `json:"generatedCount"`
	PaidCount      int `json:"paidCount"`
	ModifiedCount  int `json:"modifiedCount"`

	Transactions []entity.Transaction `json:"transactions"`
}

// inPeriod applies the month/year filter; 0 for either means no filter on
// that component. Filtering happens in Go so the same code runs on sqlite
// and postgres.
func inPeriod(t *entity.Transaction, month, year int) bool {
	if month != 0 && int(t.CreatedAt.Month()) != month {
		return false
	}
	if year != 0 && t.CreatedAt.Year() != year {
		return false
	}
	return true
}

// GetBillable returns the employee's statement for the period without
// changing anything. Only ACTIVE and GENERATED rows count toward the
// total; the other statuses are reported but not summed.
func (s *BillingService) GetBillable(employeeID string, month, year int) (*Bill, error) {
	txns, err := s.Repo.FindByEmployeeBusinessID(s.DB, employeeID)
	if err != nil {
		return nil, err
	}

	bill := newBill(employeeID, month, year)
	for i := range txns {
		if !inPeriod(&txns[i], month, year) {
			continue
		}
		bill.add(&txns[i])
	}
	return bill, nil
}

// GenerateBill flips every ACTIVE transaction in the period to GENERATED
// and returns the statement as it stands afterwards. Calling it twice for
// the same period finds no ACTIVE rows the second time, so the flip is a
// no-op but the statement is rebuilt and returned again.
func (s *BillingService) GenerateBill(employeeID string, month, year int, actor string) (*Bill, error) {
	var bill *Bill
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		txns, err := s.Repo.FindByEmployeeBusinessID(tx, employeeID)
		if err != nil {
			return err
		}

		for i := range txns {
			if !inPeriod(&txns[i], month, year) {
				continue
			}
			if txns[i].Status != entity.TxnActive {
				continue
			}
			txns[i].Status = entity.TxnGenerated
			txns[i].UpdatedBy = actor
			if err := s.Repo.Save(tx, &txns[i]); err != nil {
				return err
			}
		}

		bill = newBill(employeeID, month, year)
		for i := range txns {
			if !inPeriod(&txns[i], month, year) {
				continue
			}
			bill.add(&txns[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// HasGeneratedBill reports whether any transaction in the period has
// already reached GENERATED or PAID.
func (s *BillingService) HasGeneratedBill(employeeID string, month, year int) (bool, error) {
	txns, err := s.Repo.FindByEmployeeBusinessID(s.DB, employeeID)
	if err != nil {
		return false, err
	}
	for i := range txns {
		if !inPeriod(&txns[i], month, year) {
			continue
		}
		if txns[i].Status == entity.TxnGenerated || txns[i].Status == entity.TxnPaid {
			return true, nil
		}
	}
	return false, nil
}

func newBill(employeeID string, month, year int) *Bill {
	return &Bill{
		EmployeeID:   employeeID,
		Month:        month,
		Year:         year,
		Transactions: []entity.Transaction{},
	}
}

func (b *Bill) add(t *entity.Transaction) {
	if b.EmployeeName == "" {
		b.EmployeeName = t.Employee.FullName()
	}
	switch t.Status {
	case entity.TxnActive:
		b.ActiveCount++
		b.TotalAmount += t.TotalPrice
	case entity.TxnGenerated:
		b.GeneratedCount++
		b.TotalAmount += t.TotalPrice
	case entity.TxnInactive:
		b.InactiveCount++
	case entity.TxnPaid:
		b.PaidCount++
	case entity.TxnModified:
		b.ModifiedCount++
	}
	b.Transactions = append(b.Transactions, *t)
}
