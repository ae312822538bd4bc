package planner

import "testing"

func TestAddBudgetItemValidation(t *testing.T) {
	doc := DefaultDocument()

	if _, err := doc.AddBudgetItem(BudgetItemInput{Provider: " ", Total: dec(100)}); err == nil {
		t.Errorf("blank provider accepted")
	}
	if _, err := doc.AddBudgetItem(BudgetItemInput{Provider: "DJ", Total: dec(0)}); err == nil {
		t.Errorf("zero total accepted")
	}
	if _, err := doc.AddBudgetItem(BudgetItemInput{Provider: "DJ", Total: dec(-5)}); err == nil {
		t.Errorf("negative total accepted")
	}
	if _, err := doc.AddBudgetItem(BudgetItemInput{Provider: "DJ", Total: dec(100), Deposit: dec(-1)}); err == nil {
		t.Errorf("negative deposit accepted")
	}
	if len(doc.BudgetItems) != 0 {
		t.Fatalf("rejected inputs still mutated the document")
	}
}

func TestBudgetItemStatusTransitions(t *testing.T) {
	doc := DefaultDocument()
	it, err := doc.AddBudgetItem(BudgetItemInput{Provider: "DJ", Total: dec(1000)})
	if err != nil {
		t.Fatalf("AddBudgetItem() error: %v", err)
	}
	id := it.ID

	check := func(wantStatus ItemStatus, wantBalance float64) {
		t.Helper()
		got := doc.BudgetItem(id)
		if got.Status() != wantStatus {
			t.Errorf("status = %q, want %q", got.Status(), wantStatus)
		}
		if !got.Balance().Equal(dec(wantBalance)) {
			t.Errorf("balance = %s, want %v", got.Balance(), wantBalance)
		}
	}

	check(StatusPending, 1000)

	deposit := dec(1000)
	if err := doc.UpdateBudgetItem(id, BudgetItemPatch{Deposit: &deposit}); err != nil {
		t.Fatal(err)
	}
	check(StatusPaid, 0)

	deposit = dec(400)
	if err := doc.UpdateBudgetItem(id, BudgetItemPatch{Deposit: &deposit}); err != nil {
		t.Fatal(err)
	}
	check(StatusPartial, 600)
}

func TestUpdateBudgetItemRecomputesAgainstResult(t *testing.T) {
	doc := DefaultDocument()
	it, err := doc.AddBudgetItem(BudgetItemInput{Provider: "Catering", Total: dec(2000), Deposit: dec(500)})
	if err != nil {
		t.Fatal(err)
	}

	// patching only the total must derive against the existing deposit
	total := dec(500)
	if err := doc.UpdateBudgetItem(it.ID, BudgetItemPatch{Total: &total}); err != nil {
		t.Fatal(err)
	}
	got := doc.BudgetItem(it.ID)
	if got.Status() != StatusPaid {
		t.Errorf("status = %q, want %q after total drops to deposit", got.Status(), StatusPaid)
	}

	bad := dec(0)
	if err := doc.UpdateBudgetItem(it.ID, BudgetItemPatch{Total: &bad}); err == nil {
		t.Errorf("zero total accepted on update")
	}

	// missing target is a silent no-op
	if err := doc.UpdateBudgetItem("no-item", BudgetItemPatch{Total: &total}); err != nil {
		t.Errorf("UpdateBudgetItem(missing) = %v, want nil", err)
	}
}

func TestRemoveBudgetItem(t *testing.T) {
	doc := DefaultDocument()
	it, err := doc.AddBudgetItem(BudgetItemInput{Provider: "Flores", Total: dec(300)})
	if err != nil {
		t.Fatal(err)
	}
	doc.RemoveBudgetItem(it.ID)
	if len(doc.BudgetItems) != 0 {
		t.Errorf("item still present after removal")
	}
	doc.RemoveBudgetItem(it.ID) // idempotent
}

func TestRegisterItemPayment(t *testing.T) {
	doc := DefaultDocument()
	it, err := doc.AddBudgetItem(BudgetItemInput{Provider: "Fotógrafo", Total: dec(1200), Deposit: dec(200)})
	if err != nil {
		t.Fatal(err)
	}
	id := it.ID

	if _, err := doc.RegisterItemPayment(id, dec(500)); err != nil {
		t.Fatalf("RegisterItemPayment() error: %v", err)
	}
	got := doc.BudgetItem(id)
	if !got.Deposit.Equal(dec(700)) {
		t.Errorf("deposit = %s, want 700", got.Deposit)
	}
	if got.Status() != StatusPartial {
		t.Errorf("status = %q, want %q", got.Status(), StatusPartial)
	}
	if len(got.Payments) != 1 {
		t.Errorf("payments recorded = %d, want 1", len(got.Payments))
	}

	if _, err := doc.RegisterItemPayment(id, dec(-3)); err == nil {
		t.Errorf("negative payment accepted")
	}
	if _, err := doc.RegisterItemPayment("no-item", dec(10)); err == nil {
		t.Errorf("payment on missing item must fail")
	}
}
