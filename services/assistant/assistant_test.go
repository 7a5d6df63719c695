package assistant

import (
	"context"
	"encoding/json"
	"testing"

	assistantTypes "agevee-booking/types/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFromMarkdown(t *testing.T) {
	t.Run("json fenced block", func(t *testing.T) {
		text := "```json\n{\"overview\": \"Skardu\"}\n```"
		assert.Equal(t, `{"overview": "Skardu"}`, extractJSONFromMarkdown(text))
	})

	t.Run("plain fenced block", func(t *testing.T) {
		text := "```\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, extractJSONFromMarkdown(text))
	})

	t.Run("bare json passes through", func(t *testing.T) {
		text := `{"a": 1}`
		assert.Equal(t, `{"a": 1}`, extractJSONFromMarkdown(text))
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		text := "\n  {\"a\": 1}  \n"
		assert.Equal(t, `{"a": 1}`, extractJSONFromMarkdown(text))
	})
}

func TestExtractedGuidePayloadUnmarshals(t *testing.T) {
	text := "```json\n" + `{
		"overview": "The gateway to K2.",
		"naturalPlaces": [{"name": "Deosai Plains", "description": "High-altitude plateau."}],
		"historicalPlaces": [{"name": "Kharpocho Fort", "description": "16th century fort."}],
		"hotels": [{"name": "Shangrila Resort", "description": "Lakeside luxury."}]
	}` + "\n```"

	var guide assistantTypes.DistrictGuide
	require.NoError(t, json.Unmarshal([]byte(extractJSONFromMarkdown(text)), &guide))
	assert.Equal(t, "The gateway to K2.", guide.Overview)
	require.Len(t, guide.NaturalPlaces, 1)
	assert.Equal(t, "Deosai Plains", guide.NaturalPlaces[0].Name)
}

func TestFallbacksWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	svc := NewService()
	ctx := context.Background()

	assert.Equal(t, fallbackMissingKey, svc.Chat(ctx, "What should I pack for Hunza?"))
	assert.Equal(t, fallbackMissingKey, svc.Itinerary(ctx, assistantTypes.ItineraryRequest{Days: 3, Budget: "mid-range"}))

	_, err := svc.DistrictGuide(ctx, "Skardu")
	assert.Error(t, err)

	_, _, err = svc.LiveUpdates(ctx)
	assert.Error(t, err)
}
