package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

var ErrOrderNotDelivered = errors.New("bill can only be issued for delivered orders")

type BillServiceInterface interface {
	CreateBill(ctx context.Context, orderID uuid.UUID, paymentMethod string) (*models.Bill, error)
	GetBillByOrder(ctx context.Context, orderID uuid.UUID) (*models.Bill, error)
	BillPDFURL(ctx context.Context, orderID uuid.UUID) (string, error)
}

type billService struct {
	billRepo  repositories.BillRepository
	orderRepo repositories.OrderRepository
	dishRepo  repositories.DishRepository
	minioSvc  MinioService
	bucket    string
}

func NewBillService(billRepo repositories.BillRepository, orderRepo repositories.OrderRepository,
	dishRepo repositories.DishRepository, minioSvc MinioService, bucket string) BillServiceInterface {
	return &billService{
		billRepo:  billRepo,
		orderRepo: orderRepo,
		dishRepo:  dishRepo,
		minioSvc:  minioSvc,
		bucket:    bucket,
	}
}

// CreateBill issues the bill for a delivered order and renders its PDF.
// The PDF upload is best effort: a bill record without a PDF object is
// still valid and the PDF can be regenerated later.
func (s *billService) CreateBill(ctx context.Context, orderID uuid.UUID, paymentMethod string) (*models.Bill, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.StatusEntregado {
		return nil, ErrOrderNotDelivered
	}

	existing, err := s.billRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing bill: %w", err)
	}
	if existing != nil {
		return nil, errors.New("order already has a bill")
	}

	bill := &models.Bill{
		ID:            uuid.New(),
		OrderID:       orderID,
		PaymentMethod: paymentMethod,
		Total:         order.Subtotal,
		CreatedAt:     time.Now(),
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	pdfBytes, err := s.renderPDF(ctx, bill, order)
	if err != nil {
		log.Printf("Failed to render bill PDF for order %s: %v", orderID, err)
		return bill, nil
	}

	objectName := fmt.Sprintf("bills/%s.pdf", bill.ID.String())
	if err := s.minioSvc.UploadObject(ctx, s.bucket, objectName, "application/pdf",
		bytes.NewReader(pdfBytes), int64(len(pdfBytes))); err != nil {
		log.Printf("Failed to upload bill PDF for order %s: %v", orderID, err)
		return bill, nil
	}

	if err := s.billRepo.SetPDFObject(ctx, bill.ID, objectName); err != nil {
		log.Printf("Failed to record bill PDF object for order %s: %v", orderID, err)
		return bill, nil
	}
	bill.PDFObject = &objectName
	return bill, nil
}

func (s *billService) GetBillByOrder(ctx context.Context, orderID uuid.UUID) (*models.Bill, error) {
	return s.billRepo.GetByOrderID(ctx, orderID)
}

func (s *billService) BillPDFURL(ctx context.Context, orderID uuid.UUID) (string, error) {
	bill, err := s.billRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if bill == nil {
		return "", errors.New("bill not found")
	}
	if bill.PDFObject == nil {
		return "", errors.New("bill has no rendered PDF")
	}
	return s.minioSvc.GetPresignedURL(s.bucket, *bill.PDFObject, time.Hour)
}

func (s *billService) renderPDF(ctx context.Context, bill *models.Bill, order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)

	pdf.SetXY(marginX, marginY)
	pdf.Cell(0, 10, "U-KITCHEN")
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Bill: %s", bill.ID.String()))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", bill.CreatedAt.Format("02-Jan-2006")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.ID.String()))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Payment: %s", bill.PaymentMethod))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Dish", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		name := item.DishID.String()
		if dish, err := s.dishRepo.GetByID(ctx, item.DishID); err == nil && dish != nil {
			name = dish.Name
		}
		pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", float64(item.Quantity)*item.UnitPrice), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(145, 8, "Subtotal", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", bill.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
