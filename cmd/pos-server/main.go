package main

import (
	"coffeeshop-pos/config"
	httpapi "coffeeshop-pos/internal/api/http"
	"coffeeshop-pos/internal/service"
	"coffeeshop-pos/internal/storage"
)

func main() {
	log := config.GetLogger()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	redisClient := config.MustInitRedis()
	redisStore := storage.NewRedisStore(redisClient)

	kafkaWriter := config.NewKafkaWriter(storage.OrderEventsTopic)
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	activity := service.NewActivityLogger(repo, log)
	qrEncoder := service.DefaultQRGenerator{BaseURL: config.QRBaseURL()}

	menuSvc := service.NewMenuService(repo, activity)
	inventorySvc := service.NewInventoryService(repo, activity)
	orderSvc := service.NewOrderService(repo, repo, activity, publisher, qrEncoder, config.TaxRate(), log)
	staffSvc := service.NewStaffService(repo, activity)
	reportSvc := service.NewReportService(repo, repo, repo, redisStore)

	handler := httpapi.NewHandler(menuSvc, inventorySvc, orderSvc, staffSvc, reportSvc)
	router := httpapi.NewRouter(handler, staffSvc)

	httpapi.StartServer(config.ListenAddr(), router, log)
}
