package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepositoryImpl{db: db}
}

func (r *auditRepositoryImpl) Create(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	metadataJS, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO audit_entries (actor_uid, actor_email, action, target_id, metadata)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ActorUID,
		entry.ActorEmail,
		entry.Action,
		entry.TargetID,
		metadataJS,
	)
	return err
}

func (r *auditRepositoryImpl) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, actor_uid, actor_email, action, target_id, metadata, created_at
		FROM audit_entries
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var (
			entry      audit.Entry
			metadataJS []byte
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.ActorUID,
			&entry.ActorEmail,
			&entry.Action,
			&entry.TargetID,
			&metadataJS,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metadataJS) > 0 {
			if err := json.Unmarshal(metadataJS, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
