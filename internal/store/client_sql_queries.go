package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-dashboard/models"
)

const endpointsTable = "endpoints"

func buildSaveEndpointQuery(endpoint models.Endpoint) (string, []any, error) {
	return sq.Insert(endpointsTable).
		Columns("url", "used_at").
		Values(endpoint.URL, endpoint.UsedAt.UTC()).
		Suffix("ON CONFLICT(url) DO UPDATE SET used_at = excluded.used_at").
		ToSql()
}

func buildRecentEndpointsQuery(limit int) (string, []any, error) {
	return sq.Select("url", "used_at").
		From(endpointsTable).
		OrderBy("used_at DESC", "url").
		Limit(uint64(limit)).
		ToSql()
}

func buildPruneEndpointsQuery(keep int) (string, []any, error) {
	return sq.Delete(endpointsTable).
		Where(sq.Expr("url NOT IN (SELECT url FROM endpoints ORDER BY used_at DESC, url LIMIT ?)", keep)).
		ToSql()
}
