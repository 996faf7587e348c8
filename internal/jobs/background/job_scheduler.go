package background

import (
	"context"
	"log"
	"sync"
	"time"

	"ukitchen/internal/caching"
	"ukitchen/internal/jobs"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages the periodic background jobs
type JobScheduler struct {
	scheduler     gocron.Scheduler
	stockAlertSvc *jobs.StockAlertService
	cacheSvc      caching.CacheService
	alertInterval time.Duration
	registered    map[string]gocron.Job
	mu            sync.RWMutex
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(stockAlertSvc *jobs.StockAlertService, cacheSvc caching.CacheService, alertInterval time.Duration) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:     scheduler,
		stockAlertSvc: stockAlertSvc,
		cacheSvc:      cacheSvc,
		alertInterval: alertInterval,
		registered:    make(map[string]gocron.Job),
	}
	js.registerJobs()
	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	alertsJob, err := js.scheduler.NewJob(
		gocron.DurationJob(js.alertInterval),
		gocron.NewTask(js.stockAlertSvc.ScheduledLowStockCheck, context.Background()),
		gocron.WithName("low-stock-alerts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create low stock alerts job: %v", err)
	} else {
		js.registered["low-stock-alerts"] = alertsJob
	}

	catalogJob, err := js.scheduler.NewJob(
		gocron.DurationJob(6*time.Hour),
		gocron.NewTask(js.refreshCatalogCache),
		gocron.WithName("catalog-cache-refresh"),
	)
	if err != nil {
		log.Printf("Failed to create catalog refresh job: %v", err)
	} else {
		js.registered["catalog-cache-refresh"] = catalogJob
	}

	log.Printf("Registered %d background jobs", len(js.registered))
}

// refreshCatalogCache drops the cached dish catalog so the next menu
// request rebuilds it from the database.
func (js *JobScheduler) refreshCatalogCache() error {
	if err := js.cacheSvc.InvalidateDishCatalog(context.Background()); err != nil {
		log.Printf("Failed to invalidate dish catalog cache: %v", err)
		return err
	}
	log.Printf("Dish catalog cache invalidated")
	return nil
}

// AddJob adds a custom job to the scheduler
func (js *JobScheduler) AddJob(name string, interval time.Duration, taskFn interface{}, params ...interface{}) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(taskFn, params...),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}
	js.registered[name] = job
	return nil
}

// RemoveJob removes a job from the scheduler
func (js *JobScheduler) RemoveJob(name string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.registered[name]; exists {
		err := js.scheduler.RemoveJob(job.ID())
		delete(js.registered, name)
		return err
	}
	return nil
}

// GetJobStatus returns information about scheduled jobs
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.registered))
	for name := range js.registered {
		names = append(names, name)
	}
	return map[string]interface{}{
		"total_jobs": len(js.registered),
		"jobs":       names,
	}
}
