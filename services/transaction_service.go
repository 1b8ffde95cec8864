package services

import (
	"errors"

	"canteen/entity"
	"canteen/pkg/apperr"
	"canteen/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemActor is recorded as createdBy when the sync job, not a person,
// spawns a transaction.
const SystemActor = "SYSTEM"

type TransactionService struct {
	DB        *gorm.DB
	Repo      *repository.TransactionRepository
	OrderRepo *repository.OrderRepository
}

func NewTransactionService(db *gorm.DB, repo *repository.TransactionRepository, orderRepo *repository.OrderRepository) *TransactionService {
	return &TransactionService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

// EnsureTransaction creates the single transaction billing the order, or
// does nothing if one already exists. The existence check is a fast path;
// the unique index on order_id decides races, and a duplicate-key insert
// is treated as already-done.
func (s *TransactionService) EnsureTransaction(tx *gorm.DB, order *entity.Order, status entity.TransactionStatus, actor string) error {
	exists, err := s.Repo.ExistsByOrderID(tx, order.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	t := &entity.Transaction{
		TransactionID: "TXN-" + uuid.NewString(),
		OrderID:       order.ID,
		EmployeeID:    order.EmployeeID,
		MenuItemID:    order.MenuItemID,
		Quantity:      order.Quantity,
		UnitPrice:     order.PriceAtOrder,
		TotalPrice:    order.TotalPrice,
		Status:        status,
		CreatedBy:     actor,
	}
	if err := s.Repo.Create(tx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// SyncFromOrders walks completed orders that have no transaction yet:
// delivered orders become ACTIVE (billable), cancelled ones INACTIVE.
// Safe to re-run; already-covered orders are skipped, real store errors
// abort the batch. Returns how many transactions were created.
func (s *TransactionService) SyncFromOrders(actor string) (int, error) {
	created := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		delivered, err := s.OrderRepo.FindByStatusWithoutTransaction(tx, entity.OrderDelivered)
		if err != nil {
			return err
		}
		for i := range delivered {
			if err := s.EnsureTransaction(tx, &delivered[i], entity.TxnActive, actor); err != nil {
				return err
			}
			created++
		}

		cancelled, err := s.OrderRepo.FindByStatusWithoutTransaction(tx, entity.OrderCancelled)
		if err != nil {
			return err
		}
		for i := range cancelled {
			if err := s.EnsureTransaction(tx, &cancelled[i], entity.TxnInactive, actor); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// AddRemark appends to the remarks log and forces the transaction to
// MODIFIED whatever its status was, PAID included.
func (s *TransactionService) AddRemark(id uint, remark, actor string) (*entity.Transaction, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction")
		}
		return nil, err
	}

	t.AddRemark(remark, actor)
	t.UpdatedBy = actor
	if err := s.Repo.Save(s.DB, t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddResponse appends to the responses log; status is untouched.
func (s *TransactionService) AddResponse(id uint, response, actor string) (*entity.Transaction, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction")
		}
		return nil, err
	}

	t.AddResponse(response, actor)
	t.UpdatedBy = actor
	if err := s.Repo.Save(s.DB, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransactionService) UpdateStatus(id uint, status, actor string) (*entity.Transaction, error) {
	st := entity.TransactionStatus(status)
	if !st.Valid() {
		return nil, apperr.InvalidRequest("unknown transaction status: " + status)
	}

	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction")
		}
		return nil, err
	}

	if st != t.Status && !t.Status.CanTransitionTo(st) {
		return nil, apperr.PolicyViolation("illegal transaction status transition " + string(t.Status) + " -> " + string(st))
	}

	t.Status = st
	t.UpdatedBy = actor
	if err := s.Repo.Save(s.DB, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransactionService) GetTransaction(id uint) (*entity.Transaction, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction")
		}
		return nil, err
	}
	return t, nil
}

func (s *TransactionService) GetAllTransactions() ([]entity.Transaction, error) {
	return s.Repo.FindAll()
}

// GetByMenuBusinessID reports NotFound on an empty result. That mirrors
// the original admin screens, which treat "no rows" for a concrete id as
// an error rather than an empty page.
func (s *TransactionService) GetByMenuBusinessID(menuID string) ([]entity.Transaction, error) {
	txns, err := s.Repo.FindByMenuBusinessID(menuID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperr.NotFoundf("no transactions found for menu ID: %s", menuID)
	}
	return txns, nil
}

func (s *TransactionService) GetByEmployeeBusinessID(employeeID string) ([]entity.Transaction, error) {
	txns, err := s.Repo.FindByEmployeeBusinessID(s.DB, employeeID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperr.NotFoundf("no transactions found for employee ID: %s", employeeID)
	}
	return txns, nil
}

func (s *TransactionService) ListBilledEmployees() ([]repository.BilledEmployee, error) {
	return s.Repo.FindAllBilledEmployees()
}
