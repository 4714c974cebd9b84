package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
	"github.com/jhoicas/Inspecciones-api/internal/application/quote"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

// Ensure TxRunner implements inspection.TxRunner and quote.TxRunner.
var _ inspection.TxRunner = (*TxRunner)(nil)
var _ quote.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInspection inicia una transacción con los repos de inspección y clientes, ejecuta fn y
// hace Commit o Rollback.
func (r *TxRunner) RunInspection(ctx context.Context, fn func(
	headerRepo repository.InspectionRepository,
	lineRepo repository.InspectionLineRepository,
	serialRepo repository.InspectionSerialRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(
			NewInspectionRepository(tx),
			NewInspectionLineRepository(tx),
			NewInspectionSerialRepository(tx),
			NewCustomerRepository(tx),
		)
	})
}

// RunQuote inicia una transacción con órdenes y la inspección de origen (conversión a cotización).
func (r *TxRunner) RunQuote(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	headerRepo repository.InspectionRepository,
	lineRepo repository.InspectionLineRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewOrderRepository(tx), NewInspectionRepository(tx), NewInspectionLineRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
