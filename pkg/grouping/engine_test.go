package grouping

import (
	"errors"
	"testing"
	"time"

	"pantry-planner/domain"
)

var groupNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func pantryItem(name, location string, daysUntilExpiry *int, createdAt time.Time) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		Name:            name,
		Location:        location,
		DaysUntilExpiry: daysUntilExpiry,
		CreatedAt:       createdAt,
	}
}

func intPtr(n int) *int { return &n }

func TestPantryItemsByLocation(t *testing.T) {
	items := []domain.PantryItemResponse{
		pantryItem("ice cream", "freezer", nil, groupNow),
		pantryItem("milk", "fridge", nil, groupNow),
		pantryItem("rice", "pantry", nil, groupNow),
		pantryItem("butter", "fridge", nil, groupNow),
		pantryItem("flour", "", nil, groupNow), // unset location defaults to pantry
	}

	grouped, err := PantryItems(items, ByLocation, groupNow)
	if err != nil {
		t.Fatalf("group by location: %v", err)
	}

	wantOrder := []string{"pantry", "fridge", "freezer"}
	if len(grouped.Order) != len(wantOrder) {
		t.Fatalf("expected order %v, got %v", wantOrder, grouped.Order)
	}
	for i, key := range wantOrder {
		if grouped.Order[i] != key {
			t.Fatalf("expected order %v, got %v", wantOrder, grouped.Order)
		}
	}
	if len(grouped.Buckets["pantry"]) != 2 {
		t.Fatalf("expected 2 pantry items, got %d", len(grouped.Buckets["pantry"]))
	}
	if len(grouped.Buckets["fridge"]) != 2 {
		t.Fatalf("expected 2 fridge items, got %d", len(grouped.Buckets["fridge"]))
	}
}

func TestPantryItemsEmptyBucketsDropped(t *testing.T) {
	items := []domain.PantryItemResponse{
		pantryItem("milk", "fridge", nil, groupNow),
	}

	grouped, err := PantryItems(items, ByLocation, groupNow)
	if err != nil {
		t.Fatalf("group by location: %v", err)
	}
	if len(grouped.Order) != 1 || grouped.Order[0] != "fridge" {
		t.Fatalf("expected order [fridge], got %v", grouped.Order)
	}
	if _, ok := grouped.Buckets["pantry"]; ok {
		t.Fatal("expected empty pantry bucket to be dropped")
	}
}

func TestPantryItemsByExpiration(t *testing.T) {
	items := []domain.PantryItemResponse{
		pantryItem("old yogurt", "fridge", intPtr(2), groupNow.AddDate(0, 0, -10)),
		pantryItem("milk", "fridge", intPtr(3), groupNow),
		pantryItem("canned beans", "pantry", intPtr(365), groupNow),
		pantryItem("mystery jar", "pantry", nil, groupNow),
	}

	grouped, err := PantryItems(items, ByExpiration, groupNow)
	if err != nil {
		t.Fatalf("group by expiration: %v", err)
	}

	wantOrder := []string{"expired", "expiring-soon", "fresh", "unknown"}
	if len(grouped.Order) != len(wantOrder) {
		t.Fatalf("expected order %v, got %v", wantOrder, grouped.Order)
	}
	for i, key := range wantOrder {
		if grouped.Order[i] != key {
			t.Fatalf("expected order %v, got %v", wantOrder, grouped.Order)
		}
	}
	if got := grouped.Buckets["unknown"][0].Name; got != "mystery jar" {
		t.Fatalf("expected mystery jar in unknown bucket, got %s", got)
	}
}

func TestPantryItemsUnknownStrategy(t *testing.T) {
	_, err := PantryItems(nil, Strategy("alphabetical"), groupNow)
	if !errors.Is(err, domain.ErrUnknownStrategy) {
		t.Fatalf("expected unknown strategy error, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input taxonomy, got %v", err)
	}

	// Pantry collections do not support shopping-only strategies either.
	_, err = PantryItems(nil, ByStatus, groupNow)
	if !errors.Is(err, domain.ErrUnknownStrategy) {
		t.Fatalf("expected unknown strategy error for status, got %v", err)
	}
}

func TestPantryItemsRegroupIdempotent(t *testing.T) {
	items := []domain.PantryItemResponse{
		pantryItem("rice", "pantry", nil, groupNow),
		pantryItem("milk", "fridge", nil, groupNow),
		pantryItem("peas", "freezer", nil, groupNow),
		pantryItem("beans", "pantry", nil, groupNow),
	}

	first, err := PantryItems(items, ByLocation, groupNow)
	if err != nil {
		t.Fatalf("first grouping: %v", err)
	}

	var flattened []domain.PantryItemResponse
	for _, key := range first.Order {
		flattened = append(flattened, first.Buckets[key]...)
	}

	second, err := PantryItems(flattened, ByLocation, groupNow)
	if err != nil {
		t.Fatalf("second grouping: %v", err)
	}
	for _, key := range first.Order {
		if len(first.Buckets[key]) != len(second.Buckets[key]) {
			t.Fatalf("bucket %s changed size on regroup: %d vs %d",
				key, len(first.Buckets[key]), len(second.Buckets[key]))
		}
	}
}

func shoppingItem(name, category, addedBy string, checked bool, addedAt time.Time) domain.ShoppingItemResponse {
	return domain.ShoppingItemResponse{
		Name:     name,
		Category: category,
		AddedBy:  addedBy,
		Checked:  checked,
		AddedAt:  addedAt,
	}
}

func TestShoppingItemsByCategoryOrder(t *testing.T) {
	items := []domain.ShoppingItemResponse{
		shoppingItem("crackers", "", "ana", false, groupNow),
		shoppingItem("chicken", "meat", "ana", false, groupNow),
		shoppingItem("apples", "produce", "ben", false, groupNow),
	}

	grouped, err := ShoppingItems(items, ByCategory, groupNow)
	if err != nil {
		t.Fatalf("group by category: %v", err)
	}
	wantOrder := []string{"produce", "meat", "other"}
	if len(grouped.Order) != len(wantOrder) {
		t.Fatalf("expected order %v, got %v", wantOrder, grouped.Order)
	}
	for i, key := range wantOrder {
		if grouped.Order[i] != key {
			t.Fatalf("expected order %v, got %v", wantOrder, grouped.Order)
		}
	}
}

func TestShoppingItemsSecondarySort(t *testing.T) {
	items := []domain.ShoppingItemResponse{
		shoppingItem("eggs", "dairy", "ana", true, groupNow.Add(-3*time.Hour)),
		shoppingItem("milk", "dairy", "ana", false, groupNow.Add(-2*time.Hour)),
		shoppingItem("butter", "dairy", "ana", false, groupNow.Add(-1*time.Hour)),
		shoppingItem("cheese", "dairy", "ana", true, groupNow.Add(-4*time.Hour)),
	}

	grouped, err := ShoppingItems(items, ByCategory, groupNow)
	if err != nil {
		t.Fatalf("group by category: %v", err)
	}

	bucket := grouped.Buckets["dairy"]
	wantNames := []string{"butter", "milk", "eggs", "cheese"}
	if len(bucket) != len(wantNames) {
		t.Fatalf("expected %d items, got %d", len(wantNames), len(bucket))
	}
	for i, name := range wantNames {
		if bucket[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, bucket[i].Name)
		}
	}
}

func TestShoppingItemsByDateAdded(t *testing.T) {
	items := []domain.ShoppingItemResponse{
		shoppingItem("today item", "other", "ana", false, groupNow.Add(-1*time.Hour)),
		shoppingItem("yesterday item", "other", "ana", false, groupNow.AddDate(0, 0, -1)),
		shoppingItem("midweek item", "other", "ana", false, groupNow.AddDate(0, 0, -4)),
		shoppingItem("old item", "other", "ana", false, groupNow.AddDate(0, 0, -10)),
	}

	grouped, err := ShoppingItems(items, ByDateAdded, groupNow)
	if err != nil {
		t.Fatalf("group by date-added: %v", err)
	}
	wantOrder := []string{"today", "yesterday", "this-week", "older"}
	for i, key := range wantOrder {
		if grouped.Order[i] != key {
			t.Fatalf("expected order %v, got %v", wantOrder, grouped.Order)
		}
		if len(grouped.Buckets[key]) != 1 {
			t.Fatalf("expected 1 item in %s, got %d", key, len(grouped.Buckets[key]))
		}
	}
}

func TestShoppingItemsByUserFirstOccurrence(t *testing.T) {
	items := []domain.ShoppingItemResponse{
		shoppingItem("milk", "dairy", "ben", false, groupNow),
		shoppingItem("apples", "produce", "ana", false, groupNow),
		shoppingItem("eggs", "dairy", "ben", false, groupNow),
	}

	grouped, err := ShoppingItems(items, ByUser, groupNow)
	if err != nil {
		t.Fatalf("group by user: %v", err)
	}
	if len(grouped.Order) != 2 || grouped.Order[0] != "ben" || grouped.Order[1] != "ana" {
		t.Fatalf("expected order [ben ana], got %v", grouped.Order)
	}
}

func TestShoppingItemsNoGrouping(t *testing.T) {
	items := []domain.ShoppingItemResponse{
		shoppingItem("milk", "dairy", "ana", true, groupNow),
		shoppingItem("apples", "produce", "ben", false, groupNow.Add(time.Hour)),
	}

	grouped, err := ShoppingItems(items, NoGrouping, groupNow)
	if err != nil {
		t.Fatalf("no grouping: %v", err)
	}
	if len(grouped.Order) != 1 || grouped.Order[0] != "all" {
		t.Fatalf("expected single all bucket, got %v", grouped.Order)
	}
	// The none strategy does not reorder; input order is preserved.
	if grouped.Buckets["all"][0].Name != "milk" {
		t.Fatalf("expected input order preserved, got %s first", grouped.Buckets["all"][0].Name)
	}
}
