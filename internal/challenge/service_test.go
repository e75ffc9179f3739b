package challenge

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Roosterfan/trailhub/internal/admin"
	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/logging"
	"github.com/Roosterfan/trailhub/internal/store"
	"github.com/Roosterfan/trailhub/internal/units"
)

const secret = "root-secret"

func newTestService() *Service {
	return NewService(NewMemoryRepository(), admin.NewSharedSecret(secret), store.NewGate(), logging.Discard())
}

func TestCreateAssignsSequentialIDsAndStepTarget(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, secret, CreateInput{Name: "Lakeside Loop", Distance: 10, Difficulty: "Easy", Reward: 50})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, secret, CreateInput{Name: "Ridge Run", Distance: 21.1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", first.ID, second.ID)
	}
	if first.StepTarget != 12_500 {
		t.Fatalf("expected 12500 steps, got %d", first.StepTarget)
	}
	if first.Reward != 50 {
		t.Fatalf("expected explicit reward, got %d", first.Reward)
	}
	if second.Reward != DefaultReward || second.Difficulty != DefaultDifficulty {
		t.Fatalf("expected defaults, got %+v", second)
	}
	if second.StepTarget != 26_375 {
		t.Fatalf("expected 26375 steps, got %d", second.StepTarget)
	}

	items, _ := svc.List(ctx)
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("expected insertion order, got %+v", items)
	}
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc := newTestService()
	_, err := svc.Create(context.Background(), "wrong", CreateInput{Name: "X", Distance: 5})
	if !errors.Is(err, apperr.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestCreateValidatesDistance(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	for _, d := range []float64{0, -3, math.NaN(), math.Inf(1), 1e307, units.MaxDistance + 1} {
		if _, err := svc.Create(ctx, secret, CreateInput{Name: "X", Distance: d}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error for distance %v, got %v", d, err)
		}
	}
	if _, err := svc.Create(ctx, secret, CreateInput{Name: " ", Distance: 5}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	items, _ := svc.List(ctx)
	if len(items) != 0 {
		t.Fatalf("failed creates must not mutate the catalog")
	}
}

func TestCreateRejectsOversizedReward(t *testing.T) {
	svc := newTestService()
	for _, r := range []float64{MaxReward + 1, 1e300, math.Inf(1)} {
		_, err := svc.Create(context.Background(), secret, CreateInput{Name: "X", Distance: 5, Reward: r})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error for reward %v, got %v", r, err)
		}
	}
}

func TestCreateInvalidRewardFallsBackToDefault(t *testing.T) {
	svc := newTestService()
	c, err := svc.Create(context.Background(), secret, CreateInput{Name: "X", Distance: 5, Reward: math.NaN()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Reward != DefaultReward {
		t.Fatalf("expected default reward, got %d", c.Reward)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	c, _ := svc.Create(ctx, secret, CreateInput{Name: "X", Distance: 5})

	if _, err := svc.Delete(ctx, "nope", c.ID); !errors.Is(err, apperr.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if _, err := svc.Delete(ctx, secret, 99); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	removed, err := svc.Delete(ctx, secret, c.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != c.ID {
		t.Fatalf("expected removed challenge returned")
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected deleted challenge to be gone, got %v", err)
	}

	next, _ := svc.Create(ctx, secret, CreateInput{Name: "Y", Distance: 5})
	if next.ID != 2 {
		t.Fatalf("ids must not be reused after delete, got %d", next.ID)
	}
}

func TestSeedLoadsLaunchCatalog(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	items, _ := svc.List(ctx)
	if len(items) != len(launchCatalog) {
		t.Fatalf("expected %d seeded challenges, got %d", len(launchCatalog), len(items))
	}
	first := items[0]
	if first.ID != 1 || first.Name != "Desert Trail Challenge" || first.TargetDistance != 80 || first.StepTarget != 100_000 {
		t.Fatalf("unexpected first challenge %+v", first)
	}
	if first.CreatedBy != systemCreator || first.Cause == "" {
		t.Fatalf("expected seeded metadata, got %+v", first)
	}
}
