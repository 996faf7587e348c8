package repositories

import (
	"context"
	"errors"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BillRepository interface {
	Create(ctx context.Context, bill *models.Bill) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Bill, error)
	SetPDFObject(ctx context.Context, id uuid.UUID, objectName string) error
}

type billRepo struct {
	db Database
}

func NewBillRepository(db Database) BillRepository {
	return &billRepo{db: db}
}

func (r *billRepo) Create(ctx context.Context, bill *models.Bill) error {
	query := `
		INSERT INTO bills (id, order_id, payment_method, total, pdf_object, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, bill.ID, bill.OrderID, bill.PaymentMethod, bill.Total, bill.PDFObject)
	return err
}

func (r *billRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Bill, error) {
	bill := &models.Bill{}
	query := `
		SELECT id, order_id, payment_method, total, pdf_object, created_at
		FROM bills
		WHERE order_id = $1
	`
	err := r.db.QueryRow(ctx, query, orderID).Scan(&bill.ID, &bill.OrderID, &bill.PaymentMethod,
		&bill.Total, &bill.PDFObject, &bill.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return bill, nil
}

func (r *billRepo) SetPDFObject(ctx context.Context, id uuid.UUID, objectName string) error {
	query := `UPDATE bills SET pdf_object = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, objectName, id)
	return err
}
