package loader

import (
	"optiedge/database"
	"testing"
)

func TestInitDatabaseIsRepeatable(t *testing.T) {
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := InitDatabase(db); err != nil {
			t.Fatalf("InitDatabase #%d: %v", i+1, err)
		}
	}

	var users int
	if err := db.Get(&users, "SELECT COUNT(*) FROM users WHERE username = 'admin'"); err != nil {
		t.Fatal(err)
	}
	if users != 1 {
		t.Errorf("admin rows = %d, want 1", users)
	}
}

func TestInitDatabaseAddsUpdatedAt(t *testing.T) {
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	const oldSchema = `
		CREATE TABLE products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			price REAL NOT NULL,
			quantity INTEGER NOT NULL
		);
		INSERT INTO products (name, price, quantity) VALUES ('Legacy', 2.5, 3);`
	if _, err := db.Exec(oldSchema); err != nil {
		t.Fatal(err)
	}

	if err := InitDatabase(db); err != nil {
		t.Fatalf("InitDatabase: %v", err)
	}

	products, err := database.GetAllProducts(db)
	if err != nil {
		t.Fatalf("GetAllProducts after migration: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Legacy" || products[0].UpdatedAt != "" {
		t.Errorf("unexpected rows after migration: %+v", products)
	}
}
