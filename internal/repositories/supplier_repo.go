package repositories

import (
	"context"
	"errors"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

const supplierColumns = `id, company_name, tax_id, mail, phone_number, type_ingredient, full_name, business_name, created_at, updated_at`

func scanSupplier(row pgx.Row) (*models.Supplier, error) {
	s := &models.Supplier{}
	err := row.Scan(&s.ID, &s.CompanyName, &s.TaxID, &s.Mail, &s.PhoneNumber,
		&s.TypeIngredient, &s.FullName, &s.BusinessName, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_name, tax_id, mail, phone_number, type_ingredient, full_name, business_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.CompanyName, supplier.TaxID, supplier.Mail,
		supplier.PhoneNumber, supplier.TypeIngredient, supplier.FullName, supplier.BusinessName)
	return err
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	supplier, err := scanSupplier(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET company_name = $1, tax_id = $2, mail = $3, phone_number = $4, type_ingredient = $5,
		    full_name = $6, business_name = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, supplier.CompanyName, supplier.TaxID, supplier.Mail,
		supplier.PhoneNumber, supplier.TypeIngredient, supplier.FullName, supplier.BusinessName, supplier.ID)
	return err
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM suppliers WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *supplierRepo) List(ctx context.Context, limit, offset int) ([]*models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY company_name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}
