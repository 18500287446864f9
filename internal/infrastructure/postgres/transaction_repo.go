package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kiranabill/backend/internal/domain"
)

type transactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a PostgreSQL-backed TransactionRepository.
func NewTransactionRepo(db *sqlx.DB) domain.TransactionRepository {
	return &transactionRepo{db: db}
}

// transactionRow mirrors the transactions table; items is a JSONB
// document since its shape depends on the input channel.
type transactionRow struct {
	ID              uuid.UUID `db:"id"`
	Items           []byte    `db:"items"`
	PaymentMode     string    `db:"payment_mode"`
	TotalAmount     float64   `db:"total_amount"`
	Source          string    `db:"source"`
	ConfidenceScore float64   `db:"confidence_score"`
	RawTranscript   string    `db:"raw_transcript"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r *transactionRepo) Create(ctx context.Context, txn *domain.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().UTC()
	}

	items, err := json.Marshal(txn.Items)
	if err != nil {
		return fmt.Errorf("encoding transaction items: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO transactions
		   (id, items, payment_mode, total_amount, source, confidence_score, raw_transcript, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		txn.ID, items, txn.PaymentMode, txn.TotalAmount,
		txn.Source, txn.ConfidenceScore, txn.RawTranscript, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

func (r *transactionRepo) ListByDate(ctx context.Context, date string) ([]domain.Transaction, error) {
	var rows []transactionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, items, payment_mode, total_amount, source, confidence_score, raw_transcript, created_at
		 FROM transactions
		 WHERE created_at >= $1::date
		   AND created_at < $1::date + INTERVAL '1 day'
		 ORDER BY created_at ASC`, date)
	if err != nil {
		return nil, fmt.Errorf("listing transactions for %s: %w", date, err)
	}

	txns := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txn := domain.Transaction{
			ID:              row.ID,
			PaymentMode:     domain.PaymentMode(row.PaymentMode),
			TotalAmount:     row.TotalAmount,
			Source:          row.Source,
			ConfidenceScore: row.ConfidenceScore,
			RawTranscript:   row.RawTranscript,
			CreatedAt:       row.CreatedAt,
		}
		if len(row.Items) > 0 {
			if err := json.Unmarshal(row.Items, &txn.Items); err != nil {
				return nil, fmt.Errorf("decoding items for transaction %s: %w", row.ID, err)
			}
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
