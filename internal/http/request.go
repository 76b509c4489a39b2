package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// decodeJSON lê o corpo JSON rejeitando campos desconhecidos.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("corpo JSON inválido")
	}
	return nil
}

// idParam interpreta um parâmetro de rota como id numérico.
func idParam(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// pageParams lê skip/limit da query string com defaults (0, 100).
func pageParams(r *http.Request) (int, int) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}

// optionalID lê um id opcional da query string.
func optionalID(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New(key + " inválido")
	}
	return &id, nil
}
