package entity

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderDelivered, true},
		{OrderPending, OrderCancelled, true},
		{OrderDelivered, OrderCancelled, false},
		{OrderDelivered, OrderPending, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderDelivered, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderDelivered, OrderCancelled} {
		if !s.Valid() {
			t.Errorf("%s reported invalid", s)
		}
	}
	if OrderStatus("SHIPPED").Valid() {
		t.Error("SHIPPED reported valid")
	}
}

func TestTransactionStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to TransactionStatus
		want     bool
	}{
		{TxnActive, TxnGenerated, true},
		{TxnActive, TxnInactive, true},
		{TxnActive, TxnPaid, false},
		{TxnInactive, TxnActive, true},
		{TxnInactive, TxnGenerated, false},
		{TxnGenerated, TxnPaid, true},
		{TxnGenerated, TxnActive, false},
		{TxnPaid, TxnModified, true},
		{TxnPaid, TxnActive, false},
		{TxnModified, TxnActive, true},
		{TxnModified, TxnPaid, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestAddRemarkForcesModified(t *testing.T) {
	txn := Transaction{Status: TxnPaid}
	txn.AddRemark("quantity disputed", "admin1")
	if txn.Status != TxnModified {
		t.Errorf("status = %v, want MODIFIED", txn.Status)
	}
	txn.AddResponse("charge stands", "admin1")
	if txn.Status != TxnModified {
		t.Errorf("status changed by response: %v", txn.Status)
	}
}
