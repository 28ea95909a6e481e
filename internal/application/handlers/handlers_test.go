package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/mocks"
	"github.com/ersonp/vgame-horizon/internal/domain/services"
)

func ts(year int, month time.Month, day int) *int64 {
	v := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	return &v
}

func intPtr(v int) *int { return &v }

func testGames() []entities.Game {
	return []entities.Game{
		{
			ID:               101,
			Name:             "Metroid Prime 4: Beyond",
			FirstReleaseDate: ts(2025, time.December, 4),
			Summary:          "Samus returns.",
			Hypes:            intPtr(40),
			InvolvedCompanies: []entities.InvolvedCompany{
				{Company: &entities.Company{Name: "Retro Studios"}, Developer: true},
				{Company: &entities.Company{Name: "Nintendo"}, Publisher: true},
			},
			Genres: []entities.Genre{{Name: "Shooter"}, {Name: "Adventure"}},
			Cover:  &entities.Cover{URL: "//images.igdb.com/igdb/image/upload/t_thumb/co1.jpg"},
		},
		{ID: 102},
	}
}

// sureTranslations renders a model answer accepting every en/cn pair.
func sureTranslations(pairs ...string) string {
	items := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, fmt.Sprintf(`{"en": %q, "cn": %q, "sure": true}`, pairs[i], pairs[i+1]))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func newReleaseService(catalog *mocks.Catalog, llm *mocks.LLMClient) *services.ReleaseService {
	var translator *services.TranslationService
	if llm != nil {
		translator = services.NewTranslationService(llm, services.TranslationOptions{}, nil)
	}
	return services.NewReleaseService(catalog, translator, nil, nil)
}

func detailJSON(d map[string]any) string {
	data, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	return string(data)
}
