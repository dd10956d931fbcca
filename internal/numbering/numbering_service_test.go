package numbering_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go-payroll/internal/numbering"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSequenceRepository struct {
	mu     sync.Mutex
	values map[string]int64
	err    error
}

func (f *fakeSequenceRepository) NextValue(ctx context.Context, companyID, series string, year int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = make(map[string]int64)
	}
	key := fmt.Sprintf("%s/%s/%d", companyID, series, year)
	f.values[key]++
	return f.values[key], nil
}

func TestNumberingService_Next_Format(t *testing.T) {
	companyID := uuid.New().String()
	svc := numbering.NewService(&fakeSequenceRepository{})

	first, err := svc.Next(context.Background(), companyID, numbering.SeriesPayroll, 2026)
	assert.NoError(t, err)
	assert.Equal(t, "PAY-2026-000001", first)

	second, err := svc.Next(context.Background(), companyID, numbering.SeriesPayroll, 2026)
	assert.NoError(t, err)
	assert.Equal(t, "PAY-2026-000002", second)
}

func TestNumberingService_Next_SeriesAreIndependent(t *testing.T) {
	companyID := uuid.New().String()
	svc := numbering.NewService(&fakeSequenceRepository{})

	_, err := svc.Next(context.Background(), companyID, numbering.SeriesPayroll, 2026)
	assert.NoError(t, err)

	slip, err := svc.Next(context.Background(), companyID, numbering.SeriesSlip, 2026)
	assert.NoError(t, err)
	assert.Equal(t, "SLIP-2026-000001", slip)

	lastYear, err := svc.Next(context.Background(), companyID, numbering.SeriesPayroll, 2025)
	assert.NoError(t, err)
	assert.Equal(t, "PAY-2025-000001", lastYear)
}

func TestNumberingService_Next_ConcurrentCallersNeverCollide(t *testing.T) {
	companyID := uuid.New().String()
	svc := numbering.NewService(&fakeSequenceRepository{})

	const callers = 50
	results := make(chan string, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := svc.Next(context.Background(), companyID, numbering.SeriesSlip, 2026)
			assert.NoError(t, err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for number := range results {
		assert.False(t, seen[number], "duplicate number issued: %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, callers)
}
