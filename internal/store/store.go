package store

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/database"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
)

// Durable storage keys. StorageKey holds the whole JSON document; the other
// two are managed by the session manager and the verification flow.
const (
	StorageKey      = "ipt_demo_v1"
	SessionTokenKey = "auth_token"
	PendingEmailKey = "unverified_email"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Store holds the in-memory document and writes it back to durable storage
// wholesale after every successful mutation. Handlers run concurrently, so
// access goes through View/Update, which serialize on a single mutex.
type Store struct {
	mu  sync.Mutex
	kv  *database.KeyValue
	doc *models.Document
}

// Open loads the document from durable storage, seeding the default admin
// account and two departments on first run.
func Open(kv *database.KeyValue) (*Store, error) {
	s := &Store{kv: kv}

	raw, found, err := kv.Get(StorageKey)
	if err != nil {
		return nil, err
	}

	if !found {
		log.Info("Storage is empty, seeding initial data")
		s.doc = seedDocument()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	s.doc = &doc
	log.WithFields(logrus.Fields{
		"accounts":    len(doc.Accounts),
		"departments": len(doc.Departments),
		"employees":   len(doc.Employees),
		"requests":    len(doc.Requests),
	}).Info("Document loaded from storage")
	return s, nil
}

// seedDocument builds the first-run document: one verified admin and two
// departments.
func seedDocument() *models.Document {
	return &models.Document{
		Accounts: []models.Account{
			{
				ID:        1,
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      models.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []models.Department{
			{ID: 1, Name: "Engineering", Description: "Software team"},
			{ID: 2, Name: "HR", Description: "Human Resources"},
		},
		Employees: []models.Employee{},
		Requests:  []models.Request{},
	}
}

// View runs fn with read access to the document. fn must not mutate it.
func (s *Store) View(fn func(doc *models.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update runs fn with write access to the document and persists the whole
// document when fn returns nil. When fn returns an error nothing is written;
// fn must leave the document untouched on failure.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.save()
}

// save serializes the document under StorageKey. Caller holds the mutex.
func (s *Store) save() error {
	raw, err := json.Marshal(s.doc)
	if err != nil {
		return err
	}
	return s.kv.Set(StorageKey, string(raw))
}
