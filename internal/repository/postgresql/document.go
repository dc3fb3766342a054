package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/document"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.Repository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `id, employee_uid, name, category, url, size_bytes, uploaded_by, created_at`

func scanDocument(row pgx.Row) (document.Document, error) {
	var doc document.Document
	err := row.Scan(
		&doc.ID,
		&doc.EmployeeUID,
		&doc.Name,
		&doc.Category,
		&doc.URL,
		&doc.SizeBytes,
		&doc.UploadedBy,
		&doc.CreatedAt,
	)
	return doc, err
}

func (r *documentRepositoryImpl) List(ctx context.Context, filter document.Filter) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	arg := 1

	if filter.EmployeeUID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_uid = $%d", arg))
		args = append(args, filter.EmployeeUID)
		arg++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", arg))
		args = append(args, filter.Category)
		arg++
	}

	query := `SELECT ` + documentColumns + ` FROM documents`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}
	return documents, rows.Err()
}

func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	doc, err := scanDocument(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, err
	}
	return doc, nil
}

func (r *documentRepositoryImpl) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (employee_uid, name, category, url, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query,
		doc.EmployeeUID,
		doc.Name,
		doc.Category,
		doc.URL,
		doc.SizeBytes,
		doc.UploadedBy,
	))
	if err != nil {
		return document.Document{}, err
	}
	return created, nil
}

func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}
