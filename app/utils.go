package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sulaski/blogden/internal/blogservice"
	"github.com/sulaski/blogden/internal/common"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

func (app *application) parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("request body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("request body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("request body contains an invalid value for the %q field", unmarshalTypeError.Field)
			}
			return fmt.Errorf("request body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("request body contains unknown field %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}
	err = decoder.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON value")
	}
	return nil
}

// parseID validates a supplied identifier before any lookup is attempted.
// Missing and malformed identifiers yield the same error, naming the field.
func parseID(s, field string) (primitive.ObjectID, error) {
	id, err := common.ParseID(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid or missing %s", field)
	}

	return id, nil
}

func (app *application) readIDParam(r *http.Request, key string) (primitive.ObjectID, error) {
	params := httprouter.ParamsFromContext(r.Context())
	return parseID(params.ByName(key), key)
}

func (app *application) readIDQuery(r *http.Request, key string) (primitive.ObjectID, error) {
	return parseID(r.URL.Query().Get(key), key)
}

// readPageLimit parses the pagination parameters. Anything that does not
// parse as a positive integer silently falls back to the default.
func (app *application) readPageLimit(r *http.Request) (page, limit int) {
	params := r.URL.Query()

	page = blogservice.DefaultPage
	if p, err := strconv.Atoi(params.Get("page")); err == nil && p > 0 {
		page = p
	}

	limit = blogservice.DefaultLimit
	if l, err := strconv.Atoi(params.Get("limit")); err == nil && l > 0 {
		limit = l
	}

	return page, limit
}

// readDateQuery parses an optional date parameter, accepting RFC 3339 or a
// plain calendar date. A present-but-unparseable value is an error naming the
// field.
func (app *application) readDateQuery(r *http.Request, key string) (*time.Time, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid %s", key)
}
