package upstream

import (
	"net/url"
	"strconv"
	"strings"
)

// ListQuery carries the pagination/search parameters shared by every list
// endpoint. Zero-valued fields are dropped from the query string, matching
// the backend's expectation that absent means "no filter".
type ListQuery struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Q      string
	Status string
	ClubID int64

	// Extra holds endpoint-specific filters passed through verbatim.
	Extra url.Values
}

// Values renders the query as url.Values, dropping unset fields and
// normalizing the sort order to upper case.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", q.Page)
	setInt(v, "limit", q.Limit)
	setString(v, "sort", q.Sort)
	setString(v, "order", strings.ToUpper(q.Order))
	setString(v, "q", q.Q)
	setString(v, "status", q.Status)
	setInt64(v, "club_id", q.ClubID)
	for key, vals := range q.Extra {
		for _, val := range vals {
			if val != "" {
				v.Add(key, val)
			}
		}
	}
	return v
}

// WithClub returns a copy of the query scoped to a club unless the caller
// already set one explicitly.
func (q ListQuery) WithClub(clubID int64) ListQuery {
	if q.ClubID == 0 && clubID != 0 {
		q.ClubID = clubID
	}
	return q
}

func setString(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setInt(v url.Values, key string, val int) {
	if val != 0 {
		v.Set(key, strconv.Itoa(val))
	}
}

func setInt64(v url.Values, key string, val int64) {
	if val != 0 {
		v.Set(key, strconv.FormatInt(val, 10))
	}
}
