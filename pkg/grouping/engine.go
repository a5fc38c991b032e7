package grouping

import (
	"fmt"
	"sort"
	"time"

	"pantry-planner/domain"
	"pantry-planner/entities"
	"pantry-planner/pkg/expiry"
)

type Strategy string

const (
	ByLocation   Strategy = "location"
	ByExpiration Strategy = "expiration"
	ByCategory   Strategy = "category"
	ByDateAdded  Strategy = "date-added"
	ByStatus     Strategy = "status"
	ByUser       Strategy = "user"
	NoGrouping   Strategy = "none"
)

// Grouped partitions a collection into named buckets. Order lists the bucket
// keys in display order; buckets with zero items appear in neither field.
type Grouped[T any] struct {
	Buckets map[string][]T `json:"buckets"`
	Order   []string       `json:"order"`
}

var (
	locationOrder   = []string{entities.LocationPantry, entities.LocationFridge, entities.LocationFreezer}
	expirationOrder = []string{string(expiry.Expired), string(expiry.ExpiringSoon), string(expiry.Fresh)}
	categoryOrder   = []string{
		entities.CategoryProduce,
		entities.CategoryDairy,
		entities.CategoryMeat,
		entities.CategoryPantry,
		entities.CategoryFrozen,
		entities.CategoryOther,
	}
	dateAddedOrder = []string{"today", "yesterday", "this-week", "older"}
	statusOrder    = []string{"unchecked", "checked"}
)

// PantryItems buckets pantry items by the given strategy. The clock is
// injected so expiration grouping stays deterministic under test.
func PantryItems(items []domain.PantryItemResponse, strategy Strategy, now time.Time) (Grouped[domain.PantryItemResponse], error) {
	switch strategy {
	case NoGrouping:
		return collect(items, nil, func(domain.PantryItemResponse) string { return "all" }), nil
	case ByLocation:
		return collect(items, locationOrder, func(item domain.PantryItemResponse) string {
			if item.Location == "" {
				return entities.LocationPantry
			}
			return item.Location
		}), nil
	case ByExpiration:
		return collect(items, expirationOrder, func(item domain.PantryItemResponse) string {
			createdAt := item.CreatedAt
			return string(expiry.Classify(&createdAt, item.DaysUntilExpiry, now))
		}), nil
	default:
		return Grouped[domain.PantryItemResponse]{}, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, strategy)
	}
}

// ShoppingItems buckets shopping list entries by the given strategy. Within
// each non-"none" bucket entries are ordered unchecked before checked, then
// most recently added first; ties keep their input order.
func ShoppingItems(items []domain.ShoppingItemResponse, strategy Strategy, now time.Time) (Grouped[domain.ShoppingItemResponse], error) {
	var grouped Grouped[domain.ShoppingItemResponse]

	switch strategy {
	case NoGrouping:
		return collect(items, nil, func(domain.ShoppingItemResponse) string { return "all" }), nil
	case ByCategory:
		grouped = collect(items, categoryOrder, func(item domain.ShoppingItemResponse) string {
			if item.Category == "" {
				return entities.CategoryOther
			}
			return item.Category
		})
	case ByDateAdded:
		grouped = collect(items, dateAddedOrder, func(item domain.ShoppingItemResponse) string {
			return dateAddedBucket(item.AddedAt, now)
		})
	case ByStatus:
		grouped = collect(items, statusOrder, func(item domain.ShoppingItemResponse) string {
			if item.Checked {
				return "checked"
			}
			return "unchecked"
		})
	case ByUser:
		grouped = collect(items, nil, func(item domain.ShoppingItemResponse) string {
			return item.AddedBy
		})
	default:
		return grouped, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, strategy)
	}

	for key := range grouped.Buckets {
		sortShoppingBucket(grouped.Buckets[key])
	}
	return grouped, nil
}

// collect partitions items and builds the bucket order: fixedOrder keys that
// are present come first, in fixedOrder sequence; keys outside fixedOrder
// (user buckets, unknown freshness) follow in first-occurrence order.
func collect[T any](items []T, fixedOrder []string, keyOf func(T) string) Grouped[T] {
	buckets := make(map[string][]T)
	var seen []string

	for _, item := range items {
		key := keyOf(item)
		if _, ok := buckets[key]; !ok {
			seen = append(seen, key)
		}
		buckets[key] = append(buckets[key], item)
	}

	inFixed := make(map[string]bool, len(fixedOrder))
	order := make([]string, 0, len(seen))
	for _, key := range fixedOrder {
		inFixed[key] = true
		if _, ok := buckets[key]; ok {
			order = append(order, key)
		}
	}
	for _, key := range seen {
		if !inFixed[key] {
			order = append(order, key)
		}
	}

	return Grouped[T]{Buckets: buckets, Order: order}
}

func sortShoppingBucket(items []domain.ShoppingItemResponse) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Checked != items[j].Checked {
			return !items[i].Checked
		}
		return items[i].AddedAt.After(items[j].AddedAt)
	})
}

func dateAddedBucket(addedAt, now time.Time) string {
	days := elapsedCalendarDays(addedAt, now)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 7:
		return "this-week"
	default:
		return "older"
	}
}

// elapsedCalendarDays counts midnight boundaries between the two instants.
func elapsedCalendarDays(from, to time.Time) int {
	fromMidnight := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toMidnight := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(toMidnight.Sub(fromMidnight).Hours() / 24)
}
