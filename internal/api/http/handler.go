package http

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/cache"
)

// Keys and values share one token grammar; anything else in a target
// is malformed.
var tokenRE = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

type cacheHandler struct {
	c *cache.Cache
}

func (h *cacheHandler) mount(r chi.Router) {
	r.Get("/{key}", wrap(h.get))
	r.Put("/{key}/{value}", wrap(h.put))
	r.Delete("/{key}", wrap(h.del))
	r.Head("/", wrap(h.head))
	r.Post("/reset", wrap(h.reset))
}

type valueDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// token extracts and validates a URL parameter against the key/value
// grammar.
func token(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if !tokenRE.MatchString(v) {
		return "", BadRequest("invalid " + name + " in target")
	}
	return v, nil
}

func (h *cacheHandler) get(w http.ResponseWriter, r *http.Request) error {
	key, err := token(r, "key")
	if err != nil {
		return err
	}
	v, ok := h.c.Get(key)
	if !ok {
		return NotFound("key not found")
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(valueDTO{Key: key, Value: string(v)})
}

func (h *cacheHandler) put(w http.ResponseWriter, r *http.Request) error {
	key, err := token(r, "key")
	if err != nil {
		return err
	}
	value, err := token(r, "value")
	if err != nil {
		return err
	}
	// A write the cache cannot fit is dropped silently; the response
	// is 200 either way, mirroring at-capacity semantics.
	h.c.Set(key, []byte(value))
	w.WriteHeader(http.StatusOK)
	return nil
}

func (h *cacheHandler) del(w http.ResponseWriter, r *http.Request) error {
	key, err := token(r, "key")
	if err != nil {
		return err
	}
	if !h.c.Del(key) {
		return NotFound("key not found")
	}
	w.WriteHeader(http.StatusOK)
	return nil
}

func (h *cacheHandler) head(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Space-Used", strconv.FormatUint(h.c.SpaceUsed(), 10))
	w.WriteHeader(http.StatusOK)
	return nil
}

func (h *cacheHandler) reset(w http.ResponseWriter, _ *http.Request) error {
	h.c.Reset()
	w.WriteHeader(http.StatusOK)
	return nil
}
