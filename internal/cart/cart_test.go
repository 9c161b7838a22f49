package cart

import (
	"testing"

	"github.com/fresh-dairy/backend/internal/models"

	"github.com/shopspring/decimal"
)

func snapshot(id uint, name string, price float64) ProductSnapshot {
	return ProductSnapshot{
		ID:    id,
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
	}
}

func TestCartAddMergesLines(t *testing.T) {
	c := New()
	c.Add(snapshot(1, "Whole Milk", 4.50))
	c.Add(snapshot(1, "Whole Milk", 4.50))
	c.Add(snapshot(2, "Yogurt", 5.50))

	if len(c.Lines) != 2 {
		t.Fatalf("want 2 lines got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("repeated add should merge quantities, got %d", c.Lines[0].Quantity)
	}
	if c.Count() != 3 {
		t.Fatalf("count want 3 got %d", c.Count())
	}
}

func TestCartDecrementRemovesAtOne(t *testing.T) {
	c := New()
	c.Add(snapshot(1, "Whole Milk", 4.50))
	c.Increment(1)

	c.Decrement(1)
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
		t.Fatalf("decrement above one should keep the line, got %+v", c.Lines)
	}

	c.Decrement(1)
	if len(c.Lines) != 0 {
		t.Fatalf("decrement at one should remove the line, got %+v", c.Lines)
	}

	// 不在购物车中的商品不报错
	c.Decrement(99)
	c.Increment(99)
	if len(c.Lines) != 0 {
		t.Fatalf("unknown product should be a no-op, got %+v", c.Lines)
	}
}

func TestCartTotal(t *testing.T) {
	c := New()
	c.Add(snapshot(1, "Whole Milk", 4.50))
	c.Increment(1)
	c.Add(snapshot(2, "Mango Lassi", 3.75))

	if got := c.Total().String(); got != "12.75" {
		t.Fatalf("total want 12.75 got %s", got)
	}

	c.Remove(2)
	if got := c.Total().String(); got != "9.00" {
		t.Fatalf("total after remove want 9.00 got %s", got)
	}

	c.Clear()
	if got := c.Total().String(); got != "0.00" {
		t.Fatalf("empty cart total want 0.00 got %s", got)
	}
}

func TestSessionPersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	session, err := NewSession(NewFileStore(dir))
	if err != nil {
		t.Fatalf("new session failed: %v", err)
	}
	if err := session.Add(snapshot(1, "Whole Milk", 4.50)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := session.Increment(1); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	reloaded, err := NewSession(NewFileStore(dir))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Cart().Count() != 2 {
		t.Fatalf("persisted count want 2 got %d", reloaded.Cart().Count())
	}
	if got := reloaded.Cart().Total().String(); got != "9.00" {
		t.Fatalf("persisted total want 9.00 got %s", got)
	}

	if err := reloaded.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	again, err := NewSession(NewFileStore(dir))
	if err != nil {
		t.Fatalf("reload after clear failed: %v", err)
	}
	if again.Cart().Count() != 0 {
		t.Fatalf("cleared cart should persist empty, got %d items", again.Cart().Count())
	}
}
