package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wayfindr/studio/internal/db"
)

const documentColumns = `id, doc_type, slug, ordinal, body, source, created_at, updated_at`

// Store persists content documents.
type Store struct {
	db *db.DB
}

// NewStore creates a new document store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Put inserts the document, or replaces the body and order of the existing
// document with the same type and slug. Singletons always use their type
// name as slug; other documents without a slug get a generated one.
func (s *Store) Put(ctx context.Context, doc Document) (*Document, error) {
	if !doc.Type.Valid() {
		return nil, fmt.Errorf("unknown document type %q", doc.Type)
	}
	if doc.Type.Singleton() {
		doc.Slug = string(doc.Type)
	}
	if doc.Slug == "" {
		doc.Slug = uuid.NewString()
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if len(doc.Body) == 0 {
		doc.Body = []byte("{}")
	}
	if !json.Valid(doc.Body) {
		return nil, fmt.Errorf("document %s/%s: body is not valid JSON", doc.Type, doc.Slug)
	}
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, doc_type, slug, ordinal, body, source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(doc_type, slug) DO UPDATE SET
		   ordinal = excluded.ordinal,
		   body = excluded.body,
		   source = excluded.source,
		   updated_at = excluded.updated_at`,
		doc.ID, doc.Type, doc.Slug, doc.Order, string(doc.Body), doc.Source, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting document: %w", err)
	}
	return s.Get(ctx, doc.Type, doc.Slug)
}

// PutRecord JSON-encodes v and stores it under the given type and slug.
func (s *Store) PutRecord(ctx context.Context, t DocType, slug string, order int, v any) (*Document, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", t, err)
	}
	return s.Put(ctx, Document{Type: t, Slug: slug, Order: order, Body: body})
}

// Get returns the document with the given type and slug, or ErrNotFound.
func (s *Store) Get(ctx context.Context, t DocType, slug string) (*Document, error) {
	if t.Singleton() {
		slug = string(t)
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+`
		 FROM documents WHERE doc_type = ? AND slug = ?`, t, slug)
	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return d, nil
}

// List returns every document of type t. Projects are newest-order first;
// everything else is in ascending order, then creation order.
func (s *Store) List(ctx context.Context, t DocType) ([]Document, error) {
	order := "ordinal ASC, created_at ASC, rowid ASC"
	if t == TypeProject {
		order = "ordinal DESC, created_at DESC, rowid DESC"
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+`
		 FROM documents WHERE doc_type = ? ORDER BY `+order, t)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// All returns every document grouped by type.
func (s *Store) All(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+`
		 FROM documents ORDER BY doc_type, ordinal, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// Delete removes one document.
func (s *Store) Delete(ctx context.Context, t DocType, slug string) error {
	if t.Singleton() {
		slug = string(t)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE doc_type = ? AND slug = ?`, t, slug)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListBySource returns the documents imported from a content file.
func (s *Store) ListBySource(ctx context.Context, source string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+`
		 FROM documents WHERE source = ? ORDER BY doc_type, ordinal, rowid`, source)
	if err != nil {
		return nil, fmt.Errorf("listing documents from %s: %w", source, err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// DeleteBySource removes every document imported from a content file and
// returns how many were removed.
func (s *Store) DeleteBySource(ctx context.Context, source string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE source = ?`, source)
	if err != nil {
		return 0, fmt.Errorf("deleting documents from %s: %w", source, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Counts returns the number of documents per type. Types with no
// documents are omitted.
func (s *Store) Counts(ctx context.Context) (map[DocType]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc_type, COUNT(*) FROM documents GROUP BY doc_type`)
	if err != nil {
		return nil, fmt.Errorf("counting documents: %w", err)
	}
	defer rows.Close()

	counts := make(map[DocType]int)
	for rows.Next() {
		var t DocType
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

// ImportChecksum returns the checksum recorded for a content file on its
// last import, or "" if it was never imported.
func (s *Store) ImportChecksum(ctx context.Context, path string) (string, error) {
	var sum string
	err := s.db.QueryRowContext(ctx, `SELECT checksum FROM import_files WHERE path = ?`, path).Scan(&sum)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading import record: %w", err)
	}
	return sum, nil
}

// RecordImport remembers the checksum of an imported content file.
func (s *Store) RecordImport(ctx context.Context, path, checksum string, documents int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO import_files (path, checksum, documents, imported_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET checksum = excluded.checksum, documents = excluded.documents, imported_at = excluded.imported_at`,
		path, checksum, documents, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}
	return nil
}

// ImportedFiles returns the paths of every recorded content file.
func (s *Store) ImportedFiles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM import_files ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("listing import records: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning import record: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// ForgetImport drops the import record of a content file.
func (s *Store) ForgetImport(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM import_files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("forgetting import: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*Document, error) {
	var d Document
	var body string
	if err := row.Scan(&d.ID, &d.Type, &d.Slug, &d.Order, &body, &d.Source, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Body = []byte(body)
	return &d, nil
}

func scanDocuments(rows *sql.Rows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

// Decode unmarshals the document body into v.
func (d Document) Decode(v any) error {
	if err := json.Unmarshal(d.Body, v); err != nil {
		return fmt.Errorf("decoding %s/%s: %w", d.Type, d.Slug, err)
	}
	return nil
}
