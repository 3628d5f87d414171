package queue

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
)

func testQueue(t *testing.T) (*Queue, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fila.db")
	q, err := Open(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	return q, dbPath
}

func sampleRecord(id string) *model.ResultRecord {
	return &model.ResultRecord{
		ID:                 id,
		CreatedAt:          time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local),
		Name:               "Ana Souza",
		Unit:               "TIJUCA",
		Session:            "Bolsão Avulso",
		ClassOfInterest:    "6º ano do EF2",
		Track:              "6º ao 8º Ano",
		MathScore:          5,
		LangScore:          5,
		DiscountPct:        65,
		MonthlyInstallment: decimal.RequireFromString("844.15"),
	}
}

func TestEnqueuePendingOrder(t *testing.T) {
	ctx := context.Background()
	q, _ := testQueue(t)

	require.NoError(t, q.Enqueue(ctx, sampleRecord("a1")))
	require.NoError(t, q.Enqueue(ctx, sampleRecord("b2")))
	require.NoError(t, q.Enqueue(ctx, sampleRecord("c3")))

	count, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	pending, err := q.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "a1", pending[0].ID)
	assert.Equal(t, "b2", pending[1].ID)
	assert.Equal(t, "c3", pending[2].ID)
}

func TestRecordSurvivesRoundTrip(t *testing.T) {
	ctx := context.Background()
	q, _ := testQueue(t)

	original := sampleRecord("a1")
	require.NoError(t, q.Enqueue(ctx, original))

	pending, err := q.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	got := pending[0]
	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.DiscountPct, got.DiscountPct)
	assert.True(t, original.MonthlyInstallment.Equal(got.MonthlyInstallment))
	assert.True(t, original.CreatedAt.Equal(got.CreatedAt))
}

func TestQueuePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	q, dbPath := testQueue(t)

	require.NoError(t, q.Enqueue(ctx, sampleRecord("a1")))
	require.NoError(t, q.Close())

	reopened, err := Open(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClearEmptiesQueue(t *testing.T) {
	ctx := context.Background()
	q, _ := testQueue(t)

	require.NoError(t, q.Enqueue(ctx, sampleRecord("a1")))
	require.NoError(t, q.Enqueue(ctx, sampleRecord("b2")))
	require.NoError(t, q.Clear(ctx))

	count, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	pending, err := q.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRecordFlushAttempt(t *testing.T) {
	ctx := context.Background()
	q, _ := testQueue(t)

	require.NoError(t, q.RecordFlushAttempt(ctx, 3, false))
	require.NoError(t, q.RecordFlushAttempt(ctx, 3, true))
}
