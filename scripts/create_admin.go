package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dev utility: insert a verified admin account straight into the stored
// document, for environments where the seeded admin has been deleted or its
// password lost. Run with: go run scripts/create_admin.go -email ... -password ...

const storageKey = "ipt_demo_v1"

type storageEntry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string
}

func (storageEntry) TableName() string {
	return "storage_entries"
}

type account struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

type document struct {
	Accounts    []account         `json:"accounts"`
	Departments []json.RawMessage `json:"departments"`
	Employees   []json.RawMessage `json:"employees"`
	Requests    []json.RawMessage `json:"requests"`
}

func main() {
	dbPath := flag.String("db", "tracker.sqlite", "Path to the sqlite storage file")
	email := flag.String("email", "", "Admin email (required)")
	password := flag.String("password", "", "Admin password, min 6 characters (required)")
	firstName := flag.String("first", "Admin", "First name")
	lastName := flag.String("last", "User", "Last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	var entry storageEntry
	if err := db.First(&entry, "key = ?", storageKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal("no stored document found; start the server once to seed it")
		}
		log.Fatalf("failed to read storage: %v", err)
	}

	var doc document
	if err := json.Unmarshal([]byte(entry.Value), &doc); err != nil {
		log.Fatalf("failed to decode document: %v", err)
	}

	for _, a := range doc.Accounts {
		if a.Email == *email {
			log.Fatalf("an account with email %s already exists", *email)
		}
	}

	doc.Accounts = append(doc.Accounts, account{
		ID:        time.Now().UnixMilli(),
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
		Role:      "admin",
		Verified:  true,
	})

	raw, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("failed to encode document: %v", err)
	}
	entry.Value = string(raw)
	if err := db.Save(&entry).Error; err != nil {
		log.Fatalf("failed to write storage: %v", err)
	}

	fmt.Printf("Created verified admin %s\n", *email)
}
