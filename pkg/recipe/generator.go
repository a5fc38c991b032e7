package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"pantry-planner/domain"
	"pantry-planner/internal/utils"
)

type (
	// RecipeGenerator produces recipe suggestions for a set of ingredient
	// names. Implementations call out to an external model.
	RecipeGenerator interface {
		GenerateRecipes(ctx context.Context, ingredients []string, req domain.GenerateRecipesRequest) ([]domain.GeneratedRecipe, error)
	}

	geminiGenerator struct {
		client *http.Client
	}
)

func NewGeminiGenerator() RecipeGenerator {
	return &geminiGenerator{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *geminiGenerator) GenerateRecipes(ctx context.Context, ingredients []string, req domain.GenerateRecipesRequest) ([]domain.GeneratedRecipe, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiAPIKey == "" || geminiModel == "" {
		return nil, domain.ErrGeneratorFailed
	}

	var prompt strings.Builder
	prompt.WriteString("Suggest 3 recipes using some or all of these ingredients: ")
	prompt.WriteString(strings.Join(ingredients, ", "))
	prompt.WriteString(". ")
	if req.CuisineType != "" {
		prompt.WriteString(fmt.Sprintf("The cuisine should be %s. ", req.CuisineType))
	}
	if req.MaxCookingTime > 0 {
		prompt.WriteString(fmt.Sprintf("Each recipe must take at most %d minutes to cook. ", req.MaxCookingTime))
	}
	prompt.WriteString("Respond ONLY with a valid JSON array of objects, each with exactly these fields: 'title' (string), 'description' (string), 'cookTimeMinutes' (number), 'servings' (number), 'ingredients' (array of strings), 'instructions' (array of strings). Do not include any explanations, markdown formatting, or extra text.")

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt.String()},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.9,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGeneratorFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	jsonPattern := regexp.MustCompile(`(?s)\[.*\]`)
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var recipes []domain.GeneratedRecipe
	if err := json.Unmarshal([]byte(responseText), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse generated recipes: %v", err)
	}
	if len(recipes) == 0 {
		return nil, domain.ErrGeneratorFailed
	}
	return recipes, nil
}
