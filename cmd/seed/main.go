// Команда seed наполняет ядро кредитования демо данными: пользователи
// и стартовые депозиты. Используется для локальной разработки дашборда.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/lendboard/internal/logger"
	"github.com/fsdevblog/lendboard/internal/transport/lendcore"
)

const seedTimeout = 30 * time.Second

func main() {
	coreAddr := flag.String("l", "http://localhost:3001", "Lending core API base URL")
	userCount := flag.Int("n", 10, "Number of demo users to create")
	flag.Parse()

	log := logger.New(os.Stdout)
	client := lendcore.New(*coreAddr)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	for i := 0; i < *userCount; i++ {
		user, err := client.AddUser(ctx, lendcore.AddUserArgs{
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Phone:    gofakeit.Phone(),
			Role:     "MEMBER",
			Password: gofakeit.Password(true, true, true, false, false, 12),
		})
		if err != nil {
			log.WithError(err).Fatal("create demo user")
		}

		// стартовый депозит, чтобы страница баланса не была пустой
		amount := decimal.NewFromFloat(gofakeit.Price(100_000, 5_000_000)).Round(0)
		if _, txErr := client.AddTransaction(ctx, lendcore.AddTransactionArgs{
			UserID:      user.ID,
			Amount:      amount.String(),
			Type:        "deposit",
			Date:        time.Now().UTC().Format(time.RFC3339),
			Description: "Initial deposit",
		}); txErr != nil {
			log.WithError(txErr).Fatal("create demo transaction")
		}

		log.WithFields(logrus.Fields{
			"user":   user.Name,
			"amount": amount.String(),
		}).Info("demo user seeded")
	}
}
