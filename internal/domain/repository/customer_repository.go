package repository

import (
	"context"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de clientes del ERP.
type CustomerRepository interface {
	GetByID(ctx context.Context, custID int64) (*entity.Customer, error)
}
