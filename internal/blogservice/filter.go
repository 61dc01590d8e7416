package blogservice

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Filter describes a scoped blog listing: the owning user and category are
// always matched exactly, keywords and creation-date bounds are optional.
type Filter struct {
	UserID     primitive.ObjectID
	CategoryID primitive.ObjectID
	Keywords   string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// normalize clamps non-positive pagination values to the defaults. Malformed
// pagination input never rejects a request.
func (f *Filter) normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}

func (f *Filter) skip() int64 {
	return int64((f.Page - 1) * f.Limit)
}

// query compiles the filter into a document-store query. Keywords are quoted
// so they match as a literal substring, case-insensitively, against either the
// title or the description.
func (f *Filter) query() bson.M {
	q := bson.M{
		"user":     f.UserID,
		"category": f.CategoryID,
	}

	if f.Keywords != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Keywords), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	created := bson.M{}
	if f.StartDate != nil {
		created["$gte"] = *f.StartDate
	}
	if f.EndDate != nil {
		created["$lte"] = *f.EndDate
	}
	if len(created) > 0 {
		q["createdAt"] = created
	}

	return q
}
