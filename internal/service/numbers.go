package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Document numbers are date-prefixed display identifiers with a 4-digit
// random suffix. The suffix is checked against existing rows with a few
// retries; a day with ~10k documents can still exhaust the space.
const numberAttempts = 5

func formatNumber(prefix string, t time.Time, n int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, t.UTC().Format("20060102"), n)
}

func (s *Service) nextOrderNumber(ctx context.Context) (string, error) {
	for range numberAttempts {
		num := formatNumber("ORD", time.Now(), rand.IntN(10000))
		existing, err := s.st.OrderByNumber(ctx, num)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return num, nil
		}
	}
	return "", fmt.Errorf("order number generation: %d collisions in a row", numberAttempts)
}

func (s *Service) nextInvoiceNumber(ctx context.Context) (string, error) {
	for range numberAttempts {
		num := formatNumber("INV", time.Now(), rand.IntN(10000))
		existing, err := s.st.InvoiceByNumber(ctx, num)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return num, nil
		}
	}
	return "", fmt.Errorf("invoice number generation: %d collisions in a row", numberAttempts)
}
