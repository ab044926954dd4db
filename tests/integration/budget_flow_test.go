package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCategoryAndBudgetFlow(t *testing.T) {
	app := setupApp(t)
	token, userID := app.registerActiveUser(t, "Alice", "alice@example.com")

	// Build the category ledger.
	app.createCategory(t, token, "Salary", "income", 0)
	app.createCategory(t, token, "Groceries", "expense", 20)
	app.createCategory(t, token, "Rent", "expense", 40)

	// Record income and spend.
	groceriesID := app.categoryID(t, token, "Groceries")
	salaryID := app.categoryID(t, token, "Salary")

	rec := app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%d,"amount":8000}`, salaryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create income failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%d,"amount":3000}`, groceriesID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}

	// Total income endpoint.
	rec = app.request("GET", fmt.Sprintf("/api/v1/users/%d/income/total", userID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("total income failed: %d %s", rec.Code, rec.Body.String())
	}
	if total := parseJSON(t, rec)["total_income"].(float64); total != 8000 {
		t.Errorf("expected total income 8000, got %v", total)
	}

	// The budget report carries one entry, for the category with spend.
	rec = app.request("GET", "/api/v1/budgets", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("budget failed: %d %s", rec.Code, rec.Body.String())
	}
	entries := parseJSON(t, rec)["entries"].([]interface{})
	if len(entries) != 1 {
		t.Fatalf("expected 1 budget entry, got %d", len(entries))
	}
	entry := entries[0].(map[string]interface{})
	if entry["category"].(string) != "Groceries" {
		t.Errorf("expected entry for Groceries, got %v", entry["category"])
	}
	if entry["planned_amount"].(float64) != 1600 {
		t.Errorf("expected planned 1600, got %v", entry["planned_amount"])
	}
	if entry["actual_amount"].(float64) != 3000 {
		t.Errorf("expected actual 3000, got %v", entry["actual_amount"])
	}
	if entry["difference"].(float64) != -1400 {
		t.Errorf("expected difference -1400, got %v", entry["difference"])
	}
}

func TestPercentageInvariantOverHTTP(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerActiveUser(t, "Alice", "alice@example.com")

	app.createCategory(t, token, "Rent", "expense", 60)
	app.createCategory(t, token, "Food", "expense", 30)

	// Creating a category that pushes the sum past 100 is refused.
	rec := app.request("POST", "/api/v1/categories",
		`{"name":"Travel","polarity":"expense","percentage":20}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d %s", rec.Code, rec.Body.String())
	}

	// Raising an existing percentage past the cap is refused too.
	rec = app.request("PUT", "/api/v1/categories/Rent/percentage", `{"percentage":80}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d %s", rec.Code, rec.Body.String())
	}

	// But raising it within the cap works.
	rec = app.request("PUT", "/api/v1/categories/Rent/percentage", `{"percentage":70}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	cat := parseJSON(t, rec)["category"].(map[string]interface{})
	if cat["percentage"].(float64) != 70 {
		t.Errorf("expected percentage 70, got %v", cat["percentage"])
	}
}

func TestAllBudgetsRequiresAdmin(t *testing.T) {
	app := setupApp(t)
	userToken, _ := app.registerActiveUser(t, "Alice", "alice@example.com")
	adminToken, _ := app.registerAdmin(t, "Boss", "boss@example.com")

	rec := app.request("GET", "/api/v1/budgets/all", "", userToken)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for regular user, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/budgets/all", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestTransactionEndpoints(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerActiveUser(t, "Alice", "alice@example.com")
	app.createCategory(t, token, "Rent", "expense", 40)
	rentID := app.categoryID(t, token, "Rent")

	// Amounts under the floor are rejected at the binding layer; the floor
	// itself is accepted.
	rec := app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%d,"amount":9}`, rentID), token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for amount below floor, got %d", rec.Code)
	}
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%d,"amount":10}`, rentID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 at the floor, got %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%d,"amount":120000}`, rentID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	txn := parseJSON(t, rec)["transaction"].(map[string]interface{})
	txnID := int(txn["id"].(float64))
	if txn["polarity"].(string) != "expense" {
		t.Errorf("expected polarity expense, got %v", txn["polarity"])
	}

	// Change the amount and read it back.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/transactions/%d/amount", txnID), `{"amount":125000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("change amount failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions/%d", txnID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get failed: %d %s", rec.Code, rec.Body.String())
	}
	txn = parseJSON(t, rec)["transaction"].(map[string]interface{})
	if txn["amount"].(float64) != 125000 {
		t.Errorf("expected amount 125000, got %v", txn["amount"])
	}

	// Threshold query.
	rec = app.request("GET", "/api/v1/transactions/higher-than?amount=100000&polarity=expense", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("higher-than failed: %d %s", rec.Code, rec.Body.String())
	}
	txns := parseJSON(t, rec)["transactions"].([]interface{})
	if len(txns) != 1 {
		t.Errorf("expected 1 matching transaction, got %d", len(txns))
	}

	// List by category.
	rec = app.request("GET", "/api/v1/transactions?category=Rent", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list by category failed: %d %s", rec.Code, rec.Body.String())
	}
	txns = parseJSON(t, rec)["transactions"].([]interface{})
	if len(txns) != 2 {
		t.Errorf("expected 2 transactions for Rent, got %d", len(txns))
	}
}

// categoryID looks up a category through the API and returns its ID.
func (app *testApp) categoryID(t *testing.T, token, name string) int {
	t.Helper()

	rec := app.request("GET", "/api/v1/categories/"+name, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get category %s failed: %d %s", name, rec.Code, rec.Body.String())
	}
	cat := parseJSON(t, rec)["category"].(map[string]interface{})
	return int(cat["id"].(float64))
}
