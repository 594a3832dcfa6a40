package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/treesh/internal/domain"
)

const selectBinding = `
	SELECT id, mobile_node, sequence, status_id, updated_at
	FROM bindings
`

// now is replaced in tests.
var now = time.Now

// RecordUpdate stores a new pending binding for mobileNode with the next
// sequence number.
func (s *Store) RecordUpdate(mobileNode string) (domain.Binding, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Binding{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var last int64
	if err := tx.QueryRow("SELECT COALESCE(MAX(sequence), 0) FROM bindings").Scan(&last); err != nil {
		return domain.Binding{}, fmt.Errorf("read sequence: %w", err)
	}

	b := domain.Binding{
		ID:         uuid.NewString(),
		MobileNode: mobileNode,
		Sequence:   last + 1,
		Status:     domain.BindingPending,
		UpdatedAt:  now().UTC().Truncate(time.Second),
	}

	if _, err := tx.Exec(
		`INSERT INTO bindings (id, mobile_node, sequence, status_id, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.MobileNode, b.Sequence, int(b.Status), b.UpdatedAt.Format(time.RFC3339),
	); err != nil {
		return domain.Binding{}, fmt.Errorf("insert binding: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Binding{}, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

// AckLatest marks the pending binding with the highest sequence as
// acknowledged. It returns domain.ErrNoPendingBinding when none is pending.
func (s *Store) AckLatest() (domain.Binding, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Binding{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRow(selectBinding+" WHERE status_id = ? ORDER BY sequence DESC LIMIT 1",
		int(domain.BindingPending))
	b, err := scanBinding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Binding{}, domain.ErrNoPendingBinding
	}
	if err != nil {
		return domain.Binding{}, err
	}

	b.Status = domain.BindingAcknowledged
	b.UpdatedAt = now().UTC().Truncate(time.Second)

	if _, err := tx.Exec(
		"UPDATE bindings SET status_id = ?, updated_at = ? WHERE id = ?",
		int(b.Status), b.UpdatedAt.Format(time.RFC3339), b.ID,
	); err != nil {
		return domain.Binding{}, fmt.Errorf("ack binding: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Binding{}, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

// List returns every binding, highest sequence first.
func (s *Store) List() ([]domain.Binding, error) {
	rows, err := s.db.Query(selectBinding + " ORDER BY sequence DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Binding
	for rows.Next() {
		b, err := scanBinding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBinding(row scanner) (domain.Binding, error) {
	var (
		b        domain.Binding
		statusID int
		ts       string
	)

	if err := row.Scan(&b.ID, &b.MobileNode, &b.Sequence, &statusID, &ts); err != nil {
		return domain.Binding{}, err
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return domain.Binding{}, fmt.Errorf("parse updated_at %q: %w", ts, err)
	}

	b.Status = domain.BindingStatus(statusID)
	b.UpdatedAt = t
	return b, nil
}

var _ domain.BindingStore = (*Store)(nil)
