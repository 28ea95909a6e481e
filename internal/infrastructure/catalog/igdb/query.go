package igdb

import (
	"fmt"
	"strings"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// gameFields is the field projection for every game query.
var gameFields = []string{
	"name",
	"summary",
	"first_release_date",
	"involved_companies.company.name",
	"involved_companies.developer",
	"involved_companies.publisher",
	"cover.url",
	"genres.name",
	"platforms.name",
	"alternative_names.name",
	"alternative_names.comment",
	"hypes",
	"url",
}

func fieldsClause() string {
	return "fields " + strings.Join(gameFields, ",") + ";"
}

func upcomingQuery(q entities.ReleaseQuery) string {
	start, end := q.Window()
	limit := q.Limit
	if limit <= 0 {
		limit = entities.DefaultReleaseLimit
	}
	return strings.Join([]string{
		fieldsClause(),
		fmt.Sprintf("where platforms = (%d) & first_release_date >= %d & first_release_date < %d;",
			q.PlatformID, start.Unix(), end.Unix()),
		"sort first_release_date asc;",
		fmt.Sprintf("limit %d;", limit),
	}, "\n")
}

func gameByIDQuery(id int64) string {
	return strings.Join([]string{
		fieldsClause(),
		fmt.Sprintf("where id = %d;", id),
	}, "\n")
}

// searchQuery restricts results to main games (category 0).
func searchQuery(keyword string, platformID int64, limit int) string {
	where := "where category = 0"
	if platformID != 0 {
		where += fmt.Sprintf(" & platforms = (%d)", platformID)
	}
	if limit <= 0 {
		limit = 20
	}
	return strings.Join([]string{
		fmt.Sprintf("search %s;", quote(keyword)),
		fieldsClause(),
		where + ";",
		fmt.Sprintf("limit %d;", limit),
	}, "\n")
}

// quote wraps s as an apicalypse string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
