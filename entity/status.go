package entity

// Statuses are closed sets. Values coming in over the API are validated
// against these tables before anything touches the database.

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderDelivered, OrderCancelled},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type TransactionStatus string

const (
	TxnActive    TransactionStatus = "ACTIVE"
	TxnInactive  TransactionStatus = "INACTIVE"
	TxnGenerated TransactionStatus = "GENERATED"
	TxnPaid      TransactionStatus = "PAID"
	TxnModified  TransactionStatus = "MODIFIED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TxnActive, TxnInactive, TxnGenerated, TxnPaid, TxnModified:
		return true
	}
	return false
}

// MODIFIED is reachable from every status through AddRemark, which bypasses
// this table. MODIFIED itself can be re-pointed anywhere by an admin once
// the remark has been reviewed.
var transactionTransitions = map[TransactionStatus][]TransactionStatus{
	TxnActive:    {TxnGenerated, TxnInactive, TxnModified},
	TxnInactive:  {TxnActive, TxnModified},
	TxnGenerated: {TxnPaid, TxnModified},
	TxnPaid:      {TxnModified},
	TxnModified:  {TxnActive, TxnInactive, TxnGenerated, TxnPaid},
}

func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range transactionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
