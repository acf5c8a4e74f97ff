package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kagaz/internal/domain"
	"kagaz/internal/port"
)

// DocumentRepo persists working documents. The full document is stored as a
// JSONB blob with a few scalar columns promoted for listing and filtering.
type DocumentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a DocumentRepo. It implements port.DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

var _ port.DocumentRepository = (*DocumentRepo)(nil)

type documentRow struct {
	ID             uuid.UUID `db:"id"`
	DocumentType   string    `db:"document_type"`
	DocumentNumber string    `db:"document_number"`
	Status         string    `db:"status"`
	Data           []byte    `db:"data"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r *documentRow) toDomain() (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(r.Data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling document %s: %w", r.ID, err)
	}
	doc.CreatedAt = r.CreatedAt
	doc.UpdatedAt = r.UpdatedAt
	return &doc, nil
}

func (r *DocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO documents (id, document_type, document_number, status, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		doc.ID, doc.DocumentType, doc.DocumentNumber, doc.Status, data, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var row documentRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, document_type, document_number, status, data, created_at, updated_at
		FROM documents WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	return row.toDomain()
}

func (r *DocumentRepo) List(ctx context.Context, limit, offset int) ([]domain.Document, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM documents`); err != nil {
		return nil, 0, fmt.Errorf("counting documents: %w", err)
	}

	var rows []documentRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, document_type, document_number, status, data, created_at, updated_at
		FROM documents ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing documents: %w", err)
	}

	docs := make([]domain.Document, 0, len(rows))
	for i := range rows {
		doc, err := rows[i].toDomain()
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, *doc)
	}
	return docs, total, nil
}

func (r *DocumentRepo) Update(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE documents
		SET document_type = $2, document_number = $3, status = $4, data = $5, updated_at = $6
		WHERE id = $1`,
		doc.ID, doc.DocumentType, doc.DocumentNumber, doc.Status, data, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
