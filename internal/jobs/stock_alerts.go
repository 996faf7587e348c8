package jobs

import (
	"context"
	"log"

	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

// StockAlertService scans the pantry for ingredients at or below their
// stock limit and logs alerts for the kitchen staff.
type StockAlertService struct {
	ingredientRepo repositories.IngredientRepository
}

type StockAlert struct {
	IngredientID uuid.UUID
	Name         string
	CurrentStock int
	StockLimit   int
	Unit         string
}

func NewStockAlertService(ingredientRepo repositories.IngredientRepository) *StockAlertService {
	return &StockAlertService{ingredientRepo: ingredientRepo}
}

// CheckLowStock returns an alert for every ingredient whose stock has
// fallen to or below its configured limit.
func (a *StockAlertService) CheckLowStock(ctx context.Context) ([]StockAlert, error) {
	ingredients, err := a.ingredientRepo.ListLowStock(ctx)
	if err != nil {
		log.Printf("Failed to list low stock ingredients: %v", err)
		return nil, err
	}

	alerts := make([]StockAlert, 0, len(ingredients))
	for _, ing := range ingredients {
		alerts = append(alerts, StockAlert{
			IngredientID: ing.ID,
			Name:         ing.Name,
			CurrentStock: ing.Stock,
			StockLimit:   ing.StockLimit,
			Unit:         ing.UnitOfMeasure,
		})
	}
	return alerts, nil
}

// LogLowStockAlerts writes the alerts to the application log
func (a *StockAlertService) LogLowStockAlerts(alerts []StockAlert) {
	if len(alerts) == 0 {
		log.Println("No low stock alerts to log")
		return
	}

	log.Printf("Low stock alerts (%d ingredients):", len(alerts))
	for _, alert := range alerts {
		log.Printf("- Ingredient '%s' has %d %s (limit: %d)",
			alert.Name,
			alert.CurrentStock,
			alert.Unit,
			alert.StockLimit)
	}
}

// ScheduledLowStockCheck is the periodic entry point
func (a *StockAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	log.Println("Starting scheduled low stock check")

	alerts, err := a.CheckLowStock(ctx)
	if err != nil {
		log.Printf("Scheduled low stock check failed: %v", err)
		return err
	}
	a.LogLowStockAlerts(alerts)

	log.Println("Scheduled low stock check completed")
	return nil
}
