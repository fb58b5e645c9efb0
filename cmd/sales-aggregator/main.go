package main

import (
	"context"
	"os/signal"
	"syscall"

	"coffeeshop-pos/config"
	"coffeeshop-pos/internal/notifier"
	"coffeeshop-pos/internal/storage"
)

func main() {
	log := config.GetLogger()

	redisClient := config.MustInitRedis()
	redisStore := storage.NewRedisStore(redisClient)

	reader := config.NewKafkaReader(storage.OrderEventsTopic, "sales-aggregator")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := notifier.NewConsumer(reader, redisStore, log)
	consumer.Start(ctx)

	log.Info("Sales aggregator stopped")
}
