package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

const documentColumns = `
	document_id, title, doc_type, status, file_path, file_size, case_id,
	uploaded_by_id, approved_by_id, rejection_reason, receipt_number,
	uploaded_at, processed_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates the repository for document and history data.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// SaveDocument inserts a document and its initial history record in one
// transaction. A receipt number collision surfaces as ErrDuplicate so the
// service can regenerate and retry.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, history domain.DocumentStatusHistory) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertDoc := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, insertDoc,
		doc.DocumentID,
		doc.Title,
		doc.Type,
		doc.Status,
		doc.FilePath,
		doc.FileSize,
		doc.CaseID,
		doc.UploadedByID,
		doc.ApprovedByID,
		doc.RejectionReason,
		doc.ReceiptNumber,
		doc.UploadedAt,
		doc.ProcessedAt,
		doc.CreatedAt,
		doc.CreatedBy,
		doc.LastUpdatedAt,
		doc.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert document "+doc.DocumentID, err)
	}

	if err := insertHistoryTx(ctx, tx, history); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// TransitionDocument applies a status change guarded by expectedStatus and
// appends the accompanying history records, all atomically. Zero matched rows
// means the document vanished (ErrNotFound) or another writer moved it first
// (ErrConflict).
func (r *PgxDocumentRepository) TransitionDocument(ctx context.Context, doc domain.Document, expectedStatus domain.DocumentStatus, history []domain.DocumentStatusHistory) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateDoc := `
		UPDATE documents
		SET status = $1, approved_by_id = $2, rejection_reason = $3, processed_at = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE document_id = $7 AND status = $8;
	`
	tag, err := tx.Exec(ctx, updateDoc,
		doc.Status,
		doc.ApprovedByID,
		doc.RejectionReason,
		doc.ProcessedAt,
		doc.LastUpdatedAt,
		doc.LastUpdatedBy,
		doc.DocumentID,
		expectedStatus,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update document "+doc.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		var current domain.DocumentStatus
		err := tx.QueryRow(ctx, `SELECT status FROM documents WHERE document_id = $1;`, doc.DocumentID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to re-read document "+doc.DocumentID, err)
		}
		return apperrors.ErrConflict
	}

	for _, rec := range history {
		if err := insertHistoryTx(ctx, tx, rec); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteDocument removes a document and cascades its history records.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM document_status_history WHERE document_id = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete history for document "+documentID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindDocumentByID retrieves a document by its ID.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	return r.scanOneDocument(r.Pool.QueryRow(ctx, query, documentID), "find document by ID "+documentID)
}

// FindDocumentByReceiptNumber retrieves a document by its receipt number.
func (r *PgxDocumentRepository) FindDocumentByReceiptNumber(ctx context.Context, receiptNumber string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE receipt_number = $1;`
	return r.scanOneDocument(r.Pool.QueryRow(ctx, query, receiptNumber), "find document by receipt "+receiptNumber)
}

// SearchDocuments applies the criteria conjunction sorted by upload time
// descending, returning the requested page and the total match count.
func (r *PgxDocumentRepository) SearchDocuments(ctx context.Context, criteria portsrepo.SearchCriteria) ([]domain.Document, int64, error) {
	where, args := buildSearchWhere(criteria)

	var total int64
	countQuery := `SELECT COUNT(*) FROM documents` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count documents", err)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := criteria.Offset
	if offset < 0 {
		offset = 0
	}
	pageQuery := `SELECT ` + documentColumns + ` FROM documents` + where +
		` ORDER BY uploaded_at DESC, document_id DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query documents", err)
	}
	defer rows.Close()

	docs, err := scanDocumentRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// ListDocumentsByCase retrieves all documents filed against a case, newest first.
func (r *PgxDocumentRepository) ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE case_id = $1 ORDER BY uploaded_at DESC, document_id DESC;`
	rows, err := r.Pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query documents for case "+caseID, err)
	}
	defer rows.Close()
	return scanDocumentRows(rows)
}

// FindHistoryByDocumentID retrieves the audit trail oldest-first.
func (r *PgxDocumentRepository) FindHistoryByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentStatusHistory, error) {
	query := `
		SELECT history_id, document_id, status, comment, changed_at
		FROM document_status_history
		WHERE document_id = $1
		ORDER BY changed_at ASC, history_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query history for document "+documentID, err)
	}
	defer rows.Close()

	records := []domain.DocumentStatusHistory{}
	for rows.Next() {
		var rec domain.DocumentStatusHistory
		if err := rows.Scan(&rec.HistoryID, &rec.DocumentID, &rec.Status, &rec.Comment, &rec.ChangedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan history row for document "+documentID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating history rows for document "+documentID, err)
	}
	return records, nil
}

// buildSearchWhere composes the WHERE clause for a criteria conjunction.
// Predicates are appended in a fixed order but AND composition makes the
// result independent of the order criteria were supplied in.
func buildSearchWhere(criteria portsrepo.SearchCriteria) (string, []any) {
	clauses := []string{}
	args := []any{}

	next := func() string { return "$" + strconv.Itoa(len(args)+1) }

	if criteria.Status != nil {
		clauses = append(clauses, "status = "+next())
		args = append(args, *criteria.Status)
	}
	if criteria.Type != nil {
		clauses = append(clauses, "doc_type = "+next())
		args = append(args, *criteria.Type)
	}
	if criteria.CaseID != nil {
		clauses = append(clauses, "case_id = "+next())
		args = append(args, *criteria.CaseID)
	}
	if criteria.TitleKeyword != nil {
		clauses = append(clauses, "LOWER(title) LIKE "+next())
		args = append(args, "%"+strings.ToLower(*criteria.TitleKeyword)+"%")
	}
	if criteria.UploadedAfter != nil {
		clauses = append(clauses, "uploaded_at >= "+next())
		args = append(args, *criteria.UploadedAfter)
	}
	if criteria.UploadedBefore != nil {
		clauses = append(clauses, "uploaded_at <= "+next())
		args = append(args, *criteria.UploadedBefore)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func insertHistoryTx(ctx context.Context, tx pgx.Tx, rec domain.DocumentStatusHistory) error {
	insertHistory := `
		INSERT INTO document_status_history (history_id, document_id, status, comment, changed_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, insertHistory, rec.HistoryID, rec.DocumentID, rec.Status, rec.Comment, rec.ChangedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert history for document "+rec.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) scanOneDocument(row pgx.Row, opDesc string) (*domain.Document, error) {
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to "+opDesc, err)
	}
	return doc, nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var doc domain.Document
	var approvedBy sql.NullString
	var rejection sql.NullString
	var processedAt sql.NullTime

	err := row.Scan(
		&doc.DocumentID,
		&doc.Title,
		&doc.Type,
		&doc.Status,
		&doc.FilePath,
		&doc.FileSize,
		&doc.CaseID,
		&doc.UploadedByID,
		&approvedBy,
		&rejection,
		&doc.ReceiptNumber,
		&doc.UploadedAt,
		&processedAt,
		&doc.CreatedAt,
		&doc.CreatedBy,
		&doc.LastUpdatedAt,
		&doc.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if approvedBy.Valid {
		doc.ApprovedByID = &approvedBy.String
	}
	if rejection.Valid {
		doc.RejectionReason = &rejection.String
	}
	if processedAt.Valid {
		t := processedAt.Time
		doc.ProcessedAt = &t
	}
	return &doc, nil
}

func scanDocumentRows(rows pgx.Rows) ([]domain.Document, error) {
	docs := []domain.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan document row", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating document rows", err)
	}
	return docs, nil
}
