package product

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSize is the fixed number of products returned per page.
const PageSize = 6

// SortOrder names one of the supported listing orders.
type SortOrder string

const (
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortDateAsc   SortOrder = "date_asc"
	SortDateDesc  SortOrder = "date_desc"
)

// MaxPage is the largest page whose skip still fits in an int64.
const MaxPage = math.MaxInt64 / PageSize

// DefaultSort is used when no (or an unknown) sort is requested.
const DefaultSort = SortDateDesc

// ParseSortOrder maps a query value to a SortOrder, falling back to DefaultSort.
func ParseSortOrder(s string) SortOrder {
	switch o := SortOrder(strings.TrimSpace(s)); o {
	case SortPriceAsc, SortPriceDesc, SortDateAsc, SortDateDesc:
		return o
	}
	return DefaultSort
}

// ListQuery is the normalized form of the /products query string.
type ListQuery struct {
	Page     int64
	Search   string
	Brand    string
	Category string
	MinPrice float64
	MaxPrice float64
	Sort     SortOrder
}

// DefaultListQuery returns the query used when no parameters are given.
func DefaultListQuery() ListQuery {
	return ListQuery{
		Page:     1,
		MinPrice: 0,
		MaxPrice: math.Inf(1),
		Sort:     DefaultSort,
	}
}

// ParseListQuery reads page, search, brand, category, minPrice, maxPrice and sort.
// Missing or malformed values fall back to their defaults instead of failing.
func ParseListQuery(v url.Values) ListQuery {
	q := DefaultListQuery()
	if p, err := strconv.ParseInt(strings.TrimSpace(v.Get("page")), 10, 64); err == nil && p >= 1 {
		q.Page = min(p, MaxPage)
	}
	q.Search = strings.TrimSpace(v.Get("search"))
	q.Brand = v.Get("brand")
	q.Category = v.Get("category")
	if f, ok := parsePrice(v.Get("minPrice")); ok {
		q.MinPrice = f
	}
	if f, ok := parsePrice(v.Get("maxPrice")); ok {
		q.MaxPrice = f
	}
	q.Sort = ParseSortOrder(v.Get("sort"))
	return q
}

func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Skip is the number of matching documents before the requested page.
func (q ListQuery) Skip() int64 {
	if q.Page < 1 {
		return 0
	}
	return (min(q.Page, MaxPage) - 1) * PageSize
}

// Limit is the maximum number of documents on a page.
func (q ListQuery) Limit() int64 { return PageSize }

// Filter builds the Mongo filter document for the query.
func (q ListQuery) Filter() bson.D {
	filter := bson.D{}
	if q.Search != "" {
		filter = append(filter, bson.E{Key: "name", Value: primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}})
	}
	if q.Brand != "" {
		filter = append(filter, bson.E{Key: "brand", Value: q.Brand})
	}
	if q.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: q.Category})
	}
	price := bson.D{{Key: "$gte", Value: q.MinPrice}}
	if !math.IsInf(q.MaxPrice, 1) {
		price = append(price, bson.E{Key: "$lte", Value: q.MaxPrice})
	}
	filter = append(filter, bson.E{Key: "price", Value: price})
	return filter
}

// SortSpec builds the Mongo sort document. _id breaks ties so pages stay stable.
func (q ListQuery) SortSpec() bson.D {
	field, dir := q.Sort.fieldAndDirection()
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

func (o SortOrder) fieldAndDirection() (string, int) {
	switch o {
	case SortPriceAsc:
		return "price", 1
	case SortPriceDesc:
		return "price", -1
	case SortDateAsc:
		return "createdAt", 1
	default:
		return "createdAt", -1
	}
}

// Matches reports whether p satisfies the query's filter. It mirrors Filter for
// stores that cannot run Mongo queries.
func (q ListQuery) Matches(p Product) bool {
	if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
		return false
	}
	if q.Brand != "" && p.Brand != q.Brand {
		return false
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	return p.Price >= q.MinPrice && p.Price <= q.MaxPrice
}

// Less orders a before b according to the query's sort order.
func (q ListQuery) Less(a, b Product) bool {
	field, dir := q.Sort.fieldAndDirection()
	var c int
	if field == "price" {
		c = compareFloat(a.Price, b.Price)
	} else {
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if c == 0 {
		c = strings.Compare(a.ID.Hex(), b.ID.Hex())
	}
	return c*dir < 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// TotalPages returns ceil(total / PageSize).
func TotalPages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}
