package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/config"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/logging"
)

const (
	productName   = "Flash Sale Headphones"
	initialStock  = 20
	totalRequests = 50
	queueSize     = 100
)

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	defer rdb.Close()

	// Clear previous test data
	rdb.Del(ctx, "stock:"+productName, "stock_at:"+productName)
	keys, _ := rdb.Keys(ctx, "idempotency:order:stress-*").Result()
	for _, k := range keys {
		rdb.Del(ctx, k)
	}

	product, err := domain.NewProduct(productName, decimal.NewFromInt(99), initialStock)
	if err != nil {
		logger.Fatal("failed to create product", zap.Error(err))
	}
	store := service.NewStore(product)

	redisAdapter := storage.NewRedisAdapter(rdb)
	orderService := service.NewOrderService(store, redisAdapter, queueSize)

	var drained sync.WaitGroup
	drained.Add(1)
	go func() {
		defer drained.Done()
		for range orderService.GetOrderQueue() {
		}
	}()

	var successCount, soldOutCount, failCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()

			items := []domain.OrderItem{{Product: product, Quantity: 1}}
			_, err := orderService.PlaceOrder(ctx, fmt.Sprintf("stress-%d", userID), items)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInventory):
				soldOutCount.Add(1)
			default:
				failCount.Add(1)
				logger.Warn("unexpected order failure", zap.Int("user", userID), zap.Error(err))
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	orderService.Close()
	drained.Wait()

	if err := service.MirrorStock(ctx, store, redisAdapter); err != nil {
		logger.Fatal("failed to mirror stock", zap.Error(err))
	}

	success := successCount.Load()
	soldOut := soldOutCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Sold Out:         %d\n", soldOut)
	fmt.Printf("Other Failures:   %d\n", failCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if success == initialStock && soldOut == totalRequests-initialStock {
		fmt.Printf("PASS: Exactly %d orders succeeded, %d sold out\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: Expected %d success/%d sold out, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, soldOut)
	}

	finalStock, found, err := redisAdapter.GetStock(ctx, productName)
	if err != nil || !found {
		logger.Fatal("failed to read final stock", zap.Bool("found", found), zap.Error(err))
	}
	fmt.Printf("Final Redis Stock: %d\n", finalStock)

	if finalStock == 0 && !product.IsActive() {
		fmt.Println("PASS: Stock depleted to 0 and product deactivated")
	} else {
		fmt.Printf("FAIL: Expected stock 0 and inactive product, got %d (active=%v)\n", finalStock, product.IsActive())
	}
}
