package recipe

import (
	"encoding/json"
	"strings"

	"pantry-planner/entities"
)

// IngredientRef is one entry of a recipe's ingredient list. Stored recipes
// hold either plain strings or objects carrying a name field; both decode
// into the same shape.
type IngredientRef struct {
	Name string
}

func (r *IngredientRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Name = s
		return nil
	}

	var obj struct {
		Name       string `json:"name"`
		Ingredient string `json:"ingredient"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Name != "" {
		r.Name = obj.Name
	} else {
		r.Name = obj.Ingredient
	}
	return nil
}

func (r IngredientRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Name)
}

type Availability struct {
	Available int      `json:"available"`
	Total     int      `json:"total"`
	Missing   []string `json:"missing"`
}

// MatchAvailability counts how many recipe ingredients the pantry satisfies.
// Matching is case-insensitive on trimmed names: an exact hit wins, otherwise
// a pantry name containing the ingredient name (or the reverse) counts as
// available. The substring rule is a deliberate heuristic, kept as-is for
// behavior compatibility even though it accepts pairs like egg/eggplant.
func MatchAvailability(ingredients []IngredientRef, pantry []*entities.PantryItem) Availability {
	index := make(map[string]*entities.PantryItem, len(pantry))
	names := make([]string, 0, len(pantry))
	for _, item := range pantry {
		key := normalizeName(item.Name)
		if key == "" {
			continue
		}
		if _, seen := index[key]; !seen {
			names = append(names, key)
		}
		index[key] = item
	}

	result := Availability{Missing: []string{}}
	for _, ingredient := range ingredients {
		display := strings.TrimSpace(ingredient.Name)
		key := normalizeName(ingredient.Name)
		if key == "" {
			continue
		}
		result.Total++

		if _, ok := index[key]; ok {
			result.Available++
			continue
		}
		if matchSubstring(key, names) != "" {
			result.Available++
			continue
		}
		result.Missing = append(result.Missing, display)
	}
	return result
}

// FindStock returns the pantry item satisfying an ingredient name, or nil.
// Lookup policy mirrors MatchAvailability: exact, then first substring hit
// in pantry order.
func FindStock(name string, pantry []*entities.PantryItem) *entities.PantryItem {
	key := normalizeName(name)
	if key == "" {
		return nil
	}

	var exact *entities.PantryItem
	for _, item := range pantry {
		if normalizeName(item.Name) == key {
			exact = item // last write wins, matching the lookup build
		}
	}
	if exact != nil {
		return exact
	}

	for _, item := range pantry {
		stockKey := normalizeName(item.Name)
		if stockKey == "" {
			continue
		}
		if strings.Contains(stockKey, key) || strings.Contains(key, stockKey) {
			return item
		}
	}
	return nil
}

func matchSubstring(key string, names []string) string {
	for _, stockKey := range names {
		if strings.Contains(stockKey, key) || strings.Contains(key, stockKey) {
			return stockKey
		}
	}
	return ""
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
