package recipe

import (
	"encoding/json"
	"testing"

	"pantry-planner/entities"
)

func stock(names ...string) []*entities.PantryItem {
	items := make([]*entities.PantryItem, 0, len(names))
	for _, name := range names {
		items = append(items, &entities.PantryItem{Name: name})
	}
	return items
}

func refs(names ...string) []IngredientRef {
	out := make([]IngredientRef, 0, len(names))
	for _, name := range names {
		out = append(out, IngredientRef{Name: name})
	}
	return out
}

func TestMatchAvailabilityEmptyRecipe(t *testing.T) {
	got := MatchAvailability(nil, stock("eggs", "milk"))
	if got.Available != 0 || got.Total != 0 {
		t.Fatalf("expected 0/0, got %d/%d", got.Available, got.Total)
	}
	if got.Missing == nil || len(got.Missing) != 0 {
		t.Fatalf("expected empty missing list, got %v", got.Missing)
	}
}

func TestMatchAvailabilityExactCaseInsensitive(t *testing.T) {
	got := MatchAvailability(refs("eggs"), stock("Eggs"))
	if got.Available != 1 || got.Total != 1 || len(got.Missing) != 0 {
		t.Fatalf("expected exact match, got %+v", got)
	}
}

func TestMatchAvailabilitySubstringBothDirections(t *testing.T) {
	// Ingredient contains the pantry name.
	got := MatchAvailability(refs("large eggs"), stock("eggs"))
	if got.Available != 1 {
		t.Fatalf("expected substring match (ingredient contains stock), got %+v", got)
	}

	// Pantry name contains the ingredient.
	got = MatchAvailability(refs("eggs"), stock("organic eggs"))
	if got.Available != 1 {
		t.Fatalf("expected substring match (stock contains ingredient), got %+v", got)
	}
}

func TestMatchAvailabilityMissing(t *testing.T) {
	got := MatchAvailability(refs("caviar"), stock("eggs"))
	if got.Available != 0 || got.Total != 1 {
		t.Fatalf("expected 0/1, got %d/%d", got.Available, got.Total)
	}
	if len(got.Missing) != 1 || got.Missing[0] != "caviar" {
		t.Fatalf("expected missing caviar, got %v", got.Missing)
	}
}

func TestMatchAvailabilityEmptyPantry(t *testing.T) {
	got := MatchAvailability(refs("eggs", "milk"), nil)
	if got.Available != 0 || got.Total != 2 || len(got.Missing) != 2 {
		t.Fatalf("expected everything missing, got %+v", got)
	}
}

func TestMatchAvailabilityDiscardsNamelessEntries(t *testing.T) {
	ingredients := []IngredientRef{{Name: "eggs"}, {Name: "   "}, {Name: ""}}
	got := MatchAvailability(ingredients, stock("eggs"))
	if got.Total != 1 || got.Available != 1 {
		t.Fatalf("expected nameless entries dropped from total, got %+v", got)
	}
}

func TestMatchAvailabilityDeterministic(t *testing.T) {
	ingredients := refs("eggs", "flour", "saffron", "butter")
	pantry := stock("Butter", "bread flour", "Eggs")

	first := MatchAvailability(ingredients, pantry)
	for i := 0; i < 10; i++ {
		again := MatchAvailability(ingredients, pantry)
		if again.Available != first.Available || again.Total != first.Total {
			t.Fatalf("run %d: counts changed: %+v vs %+v", i, again, first)
		}
		if len(again.Missing) != len(first.Missing) {
			t.Fatalf("run %d: missing list changed: %v vs %v", i, again.Missing, first.Missing)
		}
	}
	if first.Available != 3 || first.Total != 4 {
		t.Fatalf("expected 3/4 available, got %+v", first)
	}
	if len(first.Missing) != 1 || first.Missing[0] != "saffron" {
		t.Fatalf("expected saffron missing, got %v", first.Missing)
	}
}

func TestIngredientRefUnmarshal(t *testing.T) {
	var list []IngredientRef
	payload := `["eggs", {"name": "flour"}, {"ingredient": "milk"}, {"amount": "2 cups"}]`
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"eggs", "flour", "milk", ""}
	if len(list) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Fatalf("entry %d: expected %q, got %q", i, name, list[i].Name)
		}
	}
}

func TestFindStockPrefersExact(t *testing.T) {
	pantry := stock("eggplant", "eggs")
	if got := FindStock("eggs", pantry); got == nil || got.Name != "eggs" {
		t.Fatalf("expected exact match to win over substring, got %+v", got)
	}
	if got := FindStock("egg", pantry); got == nil || got.Name != "eggplant" {
		t.Fatalf("expected first substring hit, got %+v", got)
	}
	if got := FindStock("caviar", pantry); got != nil {
		t.Fatalf("expected no match, got %+v", got)
	}
}
