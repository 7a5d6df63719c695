package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"agevee-booking/logger"
	assistantTypes "agevee-booking/types/assistant"

	"google.golang.org/genai"
)

const (
	chatModel = "gemini-2.5-flash"

	systemInstruction = "You are a helpful assistant for the Agevee Four Star tourism website. " +
		"You know everything about Gilgit-Baltistan geography, culture, and travel logistics. Keep answers concise."

	itinerarySystemInstruction = "You are an expert travel consultant for Agevee Four Star, " +
		"a premium tourism agency in Gilgit-Baltistan."

	// Fallbacks shown to the user when the provider is unavailable. The
	// assistant fails closed: core operations are never blocked by it.
	fallbackMissingKey  = "The travel assistant is not configured. Please try again later."
	fallbackUnavailable = "The travel assistant is temporarily unavailable."
)

// Service wraps the Gemini API for the chat, itinerary, district guide
// and live update features. All responses are display-only and never
// persisted.
type Service struct {
	apiKey string
}

func NewService() *Service {
	return &Service{apiKey: os.Getenv("GEMINI_API_KEY")}
}

func (s *Service) newClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func (s *Service) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(ctx, chatModel, []*genai.Content{content}, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// Chat answers a free-text question. Provider failures degrade to a
// fallback message rather than an error.
func (s *Service) Chat(ctx context.Context, message string) string {
	if s.apiKey == "" {
		return fallbackMissingKey
	}

	text, err := s.generate(ctx, message, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	})
	if err != nil {
		logger.Error("Assistant chat failed", err)
		return fallbackUnavailable
	}
	return text
}

// Itinerary produces a day-by-day travel plan for the given request.
func (s *Service) Itinerary(ctx context.Context, req assistantTypes.ItineraryRequest) string {
	if s.apiKey == "" {
		return fallbackMissingKey
	}

	destination := req.Destination
	if destination == "" {
		destination = "Gilgit-Baltistan"
	}

	prompt := fmt.Sprintf(`Create a detailed %d-day travel itinerary for %s.
The traveler has a %s budget.
Their interests include: %s.

Structure the response clearly with Day 1, Day 2, etc.
Include specific hotel recommendations (invent names if needed but keep them realistic) and estimated costs.
Keep the tone professional and welcoming, matching the "Agevee Four Star" brand.`,
		req.Days, destination, req.Budget, strings.Join(req.Interests, ", "))

	text, err := s.generate(ctx, prompt, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: itinerarySystemInstruction}},
		},
	})
	if err != nil {
		logger.Error("Assistant itinerary failed", err)
		return fallbackUnavailable
	}
	return text
}

// placeListSchema describes an array of {name, description} entries.
func placeListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":        {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
			},
			Required: []string{"name", "description"},
		},
	}
}

// DistrictGuide asks for a structured travel guide for one district.
func (s *Service) DistrictGuide(ctx context.Context, districtName string) (*assistantTypes.DistrictGuide, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	prompt := fmt.Sprintf(`Provide a detailed travel guide for the %s district in Gilgit-Baltistan.
I need a rich overview, top natural places, historical sites, and recommended hotels.`, districtName)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"overview": {
					Type:        genai.TypeString,
					Description: "A captivating 3-4 sentence introduction to the district.",
				},
				"naturalPlaces":    placeListSchema(),
				"historicalPlaces": placeListSchema(),
				"hotels":           placeListSchema(),
			},
			Required: []string{"overview", "naturalPlaces", "historicalPlaces", "hotels"},
		},
	}

	text, err := s.generate(ctx, prompt, config)
	if err != nil {
		return nil, err
	}

	var guide assistantTypes.DistrictGuide
	if err := json.Unmarshal([]byte(extractJSONFromMarkdown(text)), &guide); err != nil {
		return nil, fmt.Errorf("failed to parse guide response: %w", err)
	}
	return &guide, nil
}

// LiveUpdates fetches search-grounded weather, road status and advisory
// data per district, plus the source URLs the model grounded on.
func (s *Service) LiveUpdates(ctx context.Context) (*assistantTypes.LiveStatus, []string, error) {
	if s.apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	prompt := `Find the latest real-time verified online travel information for Gilgit-Baltistan districts:
Skardu, Hunza, Gilgit, Astore, Ghizer, Ghanche, Kharmang, Nagar, and Diamer.

Look for:
1. Current weather conditions.
2. Road status (Open/Closed/Caution) for major roads like KKH, Babusar Pass, Deosai, Skardu Road.
3. Any active landslides or travel advisories.

Output strict valid JSON inside a markdown block.
The JSON structure must be:
{
  "lastUpdated": "YYYY-MM-DD HH:MM",
  "generalAlerts": ["List of general major alerts"],
  "districts": [
    {
      "name": "District Name",
      "weather": { "temp": "25°C", "condition": "Sunny" },
      "roadStatus": { "status": "OPEN", "details": "Road is clear" },
      "advisory": "Specific advice"
    }
  ]
}

Ensure roadStatus.status is exactly 'OPEN', 'CLOSED', or 'CAUTION'.`

	client, err := s.newClient(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(ctx, chatModel, []*genai.Content{content},
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch live updates: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, nil, fmt.Errorf("no content generated")
	}

	candidate := result.Candidates[0]

	var sources []string
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				sources = append(sources, chunk.Web.URI)
			}
		}
	}

	text := candidate.Content.Parts[0].Text
	var status assistantTypes.LiveStatus
	if err := json.Unmarshal([]byte(extractJSONFromMarkdown(text)), &status); err != nil {
		return nil, sources, fmt.Errorf("failed to parse live update response: %w", err)
	}
	return &status, sources, nil
}

// extractJSONFromMarkdown extracts JSON content from markdown code blocks
func extractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			return strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	return text
}
